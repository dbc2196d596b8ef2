package svg

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

var slope = Guide{P0: Tuple{0, 0}, P1: Tuple{100, 50}}

func TestTransformScenarios(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   Instructions
		want Instructions
	}{
		{
			name: "lines",
			in:   Instructions{MoveTo{0, 0}, LineTo{100, 0}},
			want: Instructions{MoveTo{0, 0}, LineTo{100, 50}},
		},
		{
			name: "horizontal line inherits y",
			in:   Instructions{MoveTo{0, 0}, HLineTo{100}},
			want: Instructions{MoveTo{0, 0}, LineTo{100, 50}},
		},
		{
			name: "vertical line inherits x",
			in:   Instructions{MoveTo{50, 0}, VLineTo{20}},
			want: Instructions{MoveTo{50, 0}, LineTo{50, 45}},
		},
		{
			name: "extrapolated beyond the guide",
			in:   Instructions{MoveTo{-100, 0}, LineTo{200, 0}},
			want: Instructions{MoveTo{-100, -50}, LineTo{200, 100}},
		},
		{
			name: "chained H and V resolve against unwarped points",
			in:   Instructions{MoveTo{0, 10}, HLineTo{40}, VLineTo{30}, HLineTo{80}},
			want: Instructions{MoveTo{0, 10}, LineTo{40, 30}, LineTo{40, 50}, LineTo{80, 70}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transform(tc.in, slope)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTransformCurveControlPoints(t *testing.T) {
	in := Instructions{
		MoveTo{0, 0},
		CurveTo{C1: Tuple{20, 0}, C2: Tuple{60, 0}, T: Tuple{100, 0}},
	}

	got, err := Transform(in, slope)
	require.NoError(t, err)
	require.Equal(t, CurveTo{C1: Tuple{20, 10}, C2: Tuple{60, 10}, T: Tuple{100, 50}}, got[1])

	got, err = NewWarper(WithIndependentControlPoints(true)).Transform(in, slope)
	require.NoError(t, err)
	require.Equal(t, CurveTo{C1: Tuple{20, 10}, C2: Tuple{60, 30}, T: Tuple{100, 50}}, got[1])
}

func TestTransformPassThrough(t *testing.T) {
	q := Other{Tag: "Q", Args: []float64{10, 10, 20, 0}}
	in := Instructions{MoveTo{0, 0}, LineTo{50, 0}, ClosePath{}, q}

	got, err := Transform(in, slope)
	require.NoError(t, err)
	require.Equal(t, ClosePath{}, got[2])
	require.Equal(t, q, got[3])
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	in := Instructions{MoveTo{0, 0}, HLineTo{100}, CurveTo{C1: Tuple{1, 1}, C2: Tuple{2, 2}, T: Tuple{3, 3}}}
	orig := append(Instructions(nil), in...)

	_, err := Transform(in, slope)
	require.NoError(t, err)
	require.Equal(t, orig, in)
}

func TestTransformZeroGuideIsIdentity(t *testing.T) {
	flat := Guide{P0: Tuple{0, 7}, P1: Tuple{100, 7}}
	in := Instructions{
		MoveTo{3, 4},
		LineTo{50, 60},
		CurveTo{C1: Tuple{1, 2}, C2: Tuple{3, 4}, T: Tuple{5, 6}},
		ClosePath{},
	}

	got, err := Transform(in, flat)
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestTransformRewritesHVToLines(t *testing.T) {
	in := Instructions{MoveTo{10, 30}, HLineTo{70}, VLineTo{5}}

	got, err := Transform(in, slope)
	require.NoError(t, err)
	for _, i := range got[1:] {
		require.Equal(t, LineInstruction, i.Kind())
	}
	// inherited coordinates are copied, only y is offset
	require.Equal(t, 70.0, got[2].(LineTo).X)
	require.Equal(t, 30+slope.OffsetAt(Tuple{70, 30}), got[1].(LineTo).Y)
}

func TestTransformMissingPreviousPoint(t *testing.T) {
	for _, in := range []Instructions{
		{HLineTo{10}},
		{VLineTo{10}},
		{MoveTo{0, 0}, ClosePath{}, HLineTo{10}},
		{MoveTo{0, 0}, Other{Tag: "Q", Args: []float64{1, 1, 2, 2}}, VLineTo{10}},
	} {
		_, err := Transform(in, slope)
		require.ErrorIs(t, err, ErrMissingPreviousPoint)
	}
}

func TestTransformLinesOnly(t *testing.T) {
	w := NewWarper(WithMode(LinesOnly))
	c := CurveTo{C1: Tuple{1, 1}, C2: Tuple{2, 2}, T: Tuple{3, 3}}
	in := Instructions{MoveTo{0, 0}, LineTo{100, 0}, HLineTo{50}, c, ClosePath{}}

	got, err := w.Transform(in, slope)
	require.NoError(t, err)
	require.Equal(t, Instructions{MoveTo{0, 0}, LineTo{100, 50}, HLineTo{50}, c, ClosePath{}}, got)

	// H as the first instruction is not an error without context
	_, err = w.Transform(Instructions{HLineTo{1}}, slope)
	require.NoError(t, err)
}

func TestWarpToLine(t *testing.T) {
	got, err := WarpToLine("M0 0 H100 V10 Z", slope)
	require.NoError(t, err)
	require.Equal(t, "M 0 0\nL 100 50\nL 100 60\nZ\n", got)

	got, err = WarpToLine("M0 0 H100\r\nV10", slope)
	require.NoError(t, err)
	require.Equal(t, "M 0 0\nL 100 50\nL 100 60\n", got)

	_, err = WarpToLine("M0 0 H100 # V10", slope)
	require.ErrorIs(t, err, ErrUnexpectedToken)

	_, err = WarpToLine("M0", slope)
	require.ErrorIs(t, err, ErrUnexpectedToken)

	_, err = WarpToLine("H10", slope)
	require.ErrorIs(t, err, ErrMissingPreviousPoint)
}

func TestWarperLogsOpaqueInstructions(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	_, err := NewWarper(WithLogger(l)).Transform(Instructions{
		MoveTo{0, 0},
		Other{Tag: "T", Args: []float64{1, 1}},
	}, slope)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "opaque instructions passed through unchanged")
	require.Contains(t, buf.String(), "count=1")
}

func TestTerminalPoint(t *testing.T) {
	p, ok := TerminalPoint(CurveTo{C1: Tuple{1, 2}, C2: Tuple{3, 4}, T: Tuple{5, 6}})
	require.True(t, ok)
	require.Equal(t, Tuple{5, 6}, p)

	for _, i := range []Instruction{HLineTo{1}, VLineTo{1}, ClosePath{}, Other{Tag: "A"}} {
		_, ok := TerminalPoint(i)
		require.False(t, ok, "%s", i.Command())
	}
}
