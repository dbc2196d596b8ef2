package svg

import (
	"fmt"
	"image"

	"golang.org/x/image/vector"
)

// Rasterize fills the path into a width x height alpha mask. H and V
// resolve against the current point.
func Rasterize(in Instructions, width, height int) (*image.Alpha, error) {
	z := vector.NewRasterizer(width, height)

	var cur, start Tuple
	for idx, i := range in {
		switch i := i.(type) {
		case MoveTo:
			cur = Tuple{i.X, i.Y}
			start = cur
			z.MoveTo(float32(i.X), float32(i.Y))
		case LineTo:
			cur = Tuple{i.X, i.Y}
			z.LineTo(float32(i.X), float32(i.Y))
		case HLineTo:
			cur[0] = i.X
			z.LineTo(float32(cur[0]), float32(cur[1]))
		case VLineTo:
			cur[1] = i.Y
			z.LineTo(float32(cur[0]), float32(cur[1]))
		case CurveTo:
			cur = i.T
			z.CubeTo(
				float32(i.C1[0]), float32(i.C1[1]),
				float32(i.C2[0]), float32(i.C2[1]),
				float32(i.T[0]), float32(i.T[1]),
			)
		case ClosePath:
			cur = start
			z.ClosePath()
		default:
			return nil, fmt.Errorf("%w: %s at %d", ErrUnsupportedInstruction, i.Command(), idx)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst, nil
}

// Coverage returns the fraction of fully covered pixels in a mask.
func Coverage(a *image.Alpha) float64 {
	b := a.Bounds()
	if b.Empty() {
		return 0
	}
	var full int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a.AlphaAt(x, y).A == 0xff {
				full++
			}
		}
	}
	return float64(full) / float64(b.Dx()*b.Dy())
}
