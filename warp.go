package svg

import (
	"fmt"
	"log/slog"
)

// Mode selects how much of the path grammar a Warper understands.
type Mode int

const (
	// CurveAware offsets moves, lines, H/V lines and cubic curves.
	CurveAware Mode = iota
	// LinesOnly offsets moves and lines directly and passes everything
	// else through. It keeps no previous-point context.
	LinesOnly
)

// Option configures a Warper.
type Option func(*warpOptions)

type warpOptions struct {
	mode                     Mode
	independentControlPoints bool
	logger                   *slog.Logger
}

func defaultOptions() warpOptions {
	return warpOptions{mode: CurveAware}
}

// WithMode sets the warper mode. The default is CurveAware.
func WithMode(m Mode) Option {
	return func(o *warpOptions) {
		o.mode = m
	}
}

// WithIndependentControlPoints makes the second control point of a curve
// take the offset at its own x. By default it reuses the offset of the
// first control point.
func WithIndependentControlPoints(on bool) Option {
	return func(o *warpOptions) {
		o.independentControlPoints = on
	}
}

// WithLogger overrides the package logger for one Warper.
func WithLogger(l *slog.Logger) Option {
	return func(o *warpOptions) {
		o.logger = l
	}
}

// Warper offsets path instructions along a guide. A Warper holds only
// configuration and is safe for concurrent use.
type Warper struct {
	opts warpOptions
}

// NewWarper creates a Warper.
func NewWarper(opts ...Option) *Warper {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Warper{opts: o}
}

func (w *Warper) logger() *slog.Logger {
	if w.opts.logger != nil {
		return w.opts.logger
	}
	return Logger()
}

// TerminalPoint returns the point an instruction ends at. Only moves,
// lines and curves carry one; H and V depend on context and the rest
// have none.
func TerminalPoint(in Instruction) (Tuple, bool) {
	switch i := in.(type) {
	case MoveTo:
		return Tuple{i.X, i.Y}, true
	case LineTo:
		return Tuple{i.X, i.Y}, true
	case CurveTo:
		return i.T, true
	}
	return Tuple{}, false
}

// Transform warps in along g and returns a new sequence; in is not
// modified. H and V instructions come out as L because their implicit
// coordinate becomes explicit once offset.
func (w *Warper) Transform(in Instructions, g Guide) (Instructions, error) {
	if w.opts.mode == LinesOnly {
		return w.transformLines(in, g), nil
	}

	out := make(Instructions, 0, len(in))
	var (
		prev    Tuple
		hasPrev bool
		opaque  int
	)
	for idx, i := range in {
		var resolved Instruction = i

		switch i := i.(type) {
		case MoveTo:
			out = append(out, MoveTo{X: i.X, Y: i.Y + g.OffsetAt(Tuple{i.X, i.Y})})
		case LineTo:
			out = append(out, LineTo{X: i.X, Y: i.Y + g.OffsetAt(Tuple{i.X, i.Y})})
		case HLineTo:
			if !hasPrev {
				return nil, fmt.Errorf("%w: H at %d", ErrMissingPreviousPoint, idx)
			}
			p := Tuple{i.X, prev[1]}
			resolved = LineTo{X: p[0], Y: p[1]}
			out = append(out, LineTo{X: p[0], Y: p[1] + g.OffsetAt(p)})
		case VLineTo:
			if !hasPrev {
				return nil, fmt.Errorf("%w: V at %d", ErrMissingPreviousPoint, idx)
			}
			p := Tuple{prev[0], i.Y}
			resolved = LineTo{X: p[0], Y: p[1]}
			out = append(out, LineTo{X: p[0], Y: p[1] + g.OffsetAt(p)})
		case CurveTo:
			out = append(out, w.curve(i, g))
		case ClosePath:
			out = append(out, i)
		default:
			opaque++
			out = append(out, i)
		}

		prev, hasPrev = TerminalPoint(resolved)
	}

	l := w.logger()
	if opaque > 0 {
		l.Warn("opaque instructions passed through unchanged", "count", opaque)
	}
	l.Debug("warped path", "instructions", len(in), "guide", g)
	return out, nil
}

func (w *Warper) curve(c CurveTo, g Guide) CurveTo {
	cp0Offset := g.OffsetAt(c.C1)
	cp1Offset := cp0Offset
	if w.opts.independentControlPoints {
		cp1Offset = g.OffsetAt(c.C2)
	}
	return CurveTo{
		C1: Tuple{c.C1[0], c.C1[1] + cp0Offset},
		C2: Tuple{c.C2[0], c.C2[1] + cp1Offset},
		T:  Tuple{c.T[0], c.T[1] + g.OffsetAt(c.T)},
	}
}

func (w *Warper) transformLines(in Instructions, g Guide) Instructions {
	out := make(Instructions, 0, len(in))
	for _, i := range in {
		switch i := i.(type) {
		case MoveTo:
			out = append(out, MoveTo{X: i.X, Y: i.Y + g.OffsetAt(Tuple{i.X, i.Y})})
		case LineTo:
			out = append(out, LineTo{X: i.X, Y: i.Y + g.OffsetAt(Tuple{i.X, i.Y})})
		default:
			out = append(out, i)
		}
	}
	w.logger().Debug("warped path", "mode", "lines", "instructions", len(in))
	return out
}

var defaultWarper = NewWarper()

// Transform warps in along g with a default Warper.
func Transform(in Instructions, g Guide) (Instructions, error) {
	return defaultWarper.Transform(in, g)
}

// WarpToLine parses d, warps it along g and serializes the result.
func WarpToLine(d string, g Guide, opts ...Option) (string, error) {
	in, err := ParsePath(d)
	if err != nil {
		return "", fmt.Errorf("parse path: %w", err)
	}
	out, err := NewWarper(opts...).Transform(in, g)
	if err != nil {
		return "", fmt.Errorf("warp path: %w", err)
	}
	return Serialize(out), nil
}
