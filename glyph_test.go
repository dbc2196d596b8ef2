package svg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextPath(t *testing.T) {
	f, err := GoRegular()
	require.NoError(t, err)

	in, err := TextPath(f, "H", 64, Tuple{10, 80})
	require.NoError(t, err)
	require.NotEmpty(t, in)
	require.Equal(t, MoveInstruction, in[0].Kind())
	require.Equal(t, CloseInstruction, in[len(in)-1].Kind())

	for _, i := range in {
		p, ok := TerminalPoint(i)
		if !ok {
			continue
		}
		require.True(t, p[0] >= 10 && p[0] <= 10+64, "x %v", p[0])
		// glyphs sit on the baseline and grow upwards
		require.True(t, p[1] <= 80 && p[1] >= 80-64, "y %v", p[1])
	}
}

func TestTextPathAdvances(t *testing.T) {
	f, err := GoRegular()
	require.NoError(t, err)

	one, err := TextPath(f, "I", 32, Tuple{})
	require.NoError(t, err)
	two, err := TextPath(f, "II", 32, Tuple{})
	require.NoError(t, err)
	require.Len(t, two, 2*len(one))

	first, _ := TerminalPoint(two[0])
	second, _ := TerminalPoint(two[len(one)])
	require.Greater(t, second[0], first[0])
	require.Equal(t, first[1], second[1])

	space, err := TextPath(f, " ", 32, Tuple{})
	require.NoError(t, err)
	require.Empty(t, space)
}

func TestWarpText(t *testing.T) {
	f, err := GoRegular()
	require.NoError(t, err)

	in, err := TextPath(f, "warp", 48, Tuple{0, 60})
	require.NoError(t, err)
	out, err := NewWarper(WithIndependentControlPoints(true)).Transform(in, Guide{P0: Tuple{0, 0}, P1: Tuple{200, 40}})
	require.NoError(t, err)
	require.Len(t, out, len(in))

	mask, err := Rasterize(out, 200, 120)
	require.NoError(t, err)
	require.Greater(t, Coverage(mask), 0.0)

	again, err := ParsePath(Serialize(out))
	require.NoError(t, err)
	require.Equal(t, Serialize(out), Serialize(again))
}
