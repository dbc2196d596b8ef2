package svg

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GoRegular returns the Go Regular font.
func GoRegular() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
}

// TextPath lays out text on a single line starting at origin, which is
// the baseline position of the first glyph, and returns the glyph
// outlines as one path. Size is in pixels per em. Quadratic segments are
// raised to cubics and every contour is closed.
func TextPath(f *sfnt.Font, text string, size float64, origin Tuple) (Instructions, error) {
	var (
		buf   sfnt.Buffer
		out   Instructions
		ppem  = fixed.Int26_6(size * 64)
		penX  = origin[0]
		glyph glyphPath
	)
	for _, r := range text {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph index %q: %w", r, err)
		}

		segments, err := f.LoadGlyph(&buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("load glyph %q: %w", r, err)
		}
		glyph.origin = Tuple{penX, origin[1]}
		out = glyph.appendSegments(out, segments)

		advance, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph advance %q: %w", r, err)
		}
		penX += fixedToFloat(advance)
	}
	return out, nil
}

type glyphPath struct {
	origin Tuple
	cur    Tuple
}

func (g *glyphPath) point(p fixed.Point26_6) Tuple {
	return Tuple{g.origin[0] + fixedToFloat(p.X), g.origin[1] + fixedToFloat(p.Y)}
}

// appendSegments converts one glyph outline. sfnt contours start with a
// move and are implicitly closed.
func (g *glyphPath) appendSegments(out Instructions, segments sfnt.Segments) Instructions {
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				out = append(out, ClosePath{})
			}
			g.cur = g.point(seg.Args[0])
			out = append(out, MoveTo{X: g.cur[0], Y: g.cur[1]})
			open = true
		case sfnt.SegmentOpLineTo:
			g.cur = g.point(seg.Args[0])
			out = append(out, LineTo{X: g.cur[0], Y: g.cur[1]})
		case sfnt.SegmentOpQuadTo:
			q, end := g.point(seg.Args[0]), g.point(seg.Args[1])
			out = append(out, CurveTo{
				C1: Tuple{g.cur[0] + 2.0/3.0*(q[0]-g.cur[0]), g.cur[1] + 2.0/3.0*(q[1]-g.cur[1])},
				C2: Tuple{end[0] + 2.0/3.0*(q[0]-end[0]), end[1] + 2.0/3.0*(q[1]-end[1])},
				T:  end,
			})
			g.cur = end
		case sfnt.SegmentOpCubeTo:
			c := CurveTo{C1: g.point(seg.Args[0]), C2: g.point(seg.Args[1]), T: g.point(seg.Args[2])}
			out = append(out, c)
			g.cur = c.T
		}
	}
	if open {
		out = append(out, ClosePath{})
	}
	return out
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
