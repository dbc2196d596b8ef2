package svg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	in := Instructions{
		MoveTo{0, 0},
		LineTo{100, 50.5},
		HLineTo{3},
		VLineTo{0.25},
		CurveTo{C1: Tuple{1, 2}, C2: Tuple{3, 4}, T: Tuple{5, 6}},
		Other{Tag: "Q", Args: []float64{1, 2, 3, 4}},
		ClosePath{},
	}
	require.Equal(t, "M 0 0\nL 100 50.5\nH 3\nV 0.25\nC 1 2 3 4 5 6\nQ 1 2 3 4\nZ\n", Serialize(in))
	require.Equal(t, Serialize(in), in.String())
}

func TestSerializeEmpty(t *testing.T) {
	require.Equal(t, "", Serialize(nil))
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, d := range []string{
		"M0 0 L100 0 L100 100 Z",
		"M10 10 H90 V90 H10 Z",
		"M0 0 C20 0 60 0 100 0 L100 30 Z",
		"M5 5 Q10 10 20 5 L40 5",
	} {
		in, err := ParsePath(d)
		require.NoError(t, err)
		out, err := Transform(in, slope)
		require.NoError(t, err)

		s := Serialize(out)
		again, err := ParsePath(s)
		require.NoError(t, err, "reparsing %q", s)
		require.Equal(t, s, Serialize(again))
	}
}
