package svg

import "fmt"

// Guide is the two-point line a path is warped along.
type Guide struct {
	P0, P1 Tuple
}

// NewGuide returns the guide through p0 and p1. The points must differ
// in x, otherwise every offset would divide by zero.
func NewGuide(p0, p1 Tuple) (Guide, error) {
	if p0[0] == p1[0] {
		return Guide{}, fmt.Errorf("%w: x=%v", ErrDegenerateGuide, p0[0])
	}
	return Guide{P0: p0, P1: p1}, nil
}

// GuideFromPath builds a guide from the first two vertices of a path
// description, e.g. "M0 0 L100 50". H and V resolve against the current
// point. A curve contributes its end point, not its first control point.
func GuideFromPath(d string, opts ...ParseOption) (Guide, error) {
	in, err := ParsePath(d, opts...)
	if err != nil {
		return Guide{}, fmt.Errorf("guide: %w", err)
	}

	var (
		points     []Tuple
		cur, start Tuple
		known      = true
	)
	for idx, i := range in {
		switch i := i.(type) {
		case HLineTo:
			if !known {
				return Guide{}, fmt.Errorf("guide: %w: H at %d", ErrMissingPreviousPoint, idx)
			}
			cur[0] = i.X
		case VLineTo:
			if !known {
				return Guide{}, fmt.Errorf("guide: %w: V at %d", ErrMissingPreviousPoint, idx)
			}
			cur[1] = i.Y
		case ClosePath:
			cur, known = start, true
			continue
		default:
			p, ok := TerminalPoint(i)
			if !ok {
				known = false
				continue
			}
			cur, known = p, true
			if _, ok := i.(MoveTo); ok {
				start = p
			}
		}

		points = append(points, cur)
		if len(points) == 2 {
			return NewGuide(points[0], points[1])
		}
	}
	return Guide{}, fmt.Errorf("%w: got %d", ErrShortGuide, len(points))
}

// OffsetAt returns the vertical displacement for p: the guide's rise
// scaled by how far p lies along the guide's x-span. Points outside the
// span are extrapolated, not clamped. Only p's x matters.
//
// A guide with no x-span yields ±Inf or NaN.
func (g Guide) OffsetAt(p Tuple) float64 {
	ratio := (p[0] - g.P0[0]) / (g.P1[0] - g.P0[0])
	maxOffset := g.P1[1] - g.P0[1]
	return ratio * maxOffset
}
