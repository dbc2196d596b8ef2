package svg

import (
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// ParseTransform parses a transform attribute: a list of matrix,
// translate, scale, rotate, skewX and skewY functions, composed left to
// right the way SVG nests them. Angles are in degrees.
func ParseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	sc, err := lex("transform", s)
	if err != nil {
		return t, err
	}

	for {
		consumeSeparators(sc)
		name := sc.next()
		switch name.Type {
		case gl.ItemEOS:
			return t, nil
		case gl.ItemWord, gl.ItemLetter:
		default:
			return t, fmt.Errorf("%w: expected transform function, got %q", ErrUnexpectedToken, name.Value)
		}

		args, err := transformArgs(sc)
		if err != nil {
			return t, fmt.Errorf("%s: %w", name.Value, err)
		}
		step, err := transformStep(name.Value, args)
		if err != nil {
			return t, err
		}
		t = mt.MultiplyTransforms(t, step)
	}
}

// transformArgs reads a parenthesised argument list.
func transformArgs(sc *scanner) ([]float64, error) {
	sc.skip(gl.ItemWSP)
	open := sc.next()
	switch {
	case open.Type == gl.ItemParan && open.Value == "()":
		return nil, nil
	case open.Type != gl.ItemParan || open.Value != "(":
		return nil, fmt.Errorf("%w: expected \"(\", got %q", ErrUnexpectedToken, open.Value)
	}

	var args []float64
	for {
		consumeSeparators(sc)
		i := sc.next()
		switch {
		case i.Type == gl.ItemParan && i.Value == ")":
			return args, nil
		case i.Type == gl.ItemEOS:
			return nil, fmt.Errorf("%w: unterminated argument list", ErrUnexpectedToken)
		}
		v, err := parseNumber(i)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
}

func transformStep(name string, args []float64) (mt.Transform, error) {
	step := mt.Identity()
	arity := func(want string) error {
		return fmt.Errorf("%w: %s takes %s arguments, got %d", ErrUnexpectedToken, name, want, len(args))
	}

	switch name {
	case "matrix":
		if len(args) != 6 {
			return step, arity("6")
		}
		a, b, c, d, e, f := args[0], args[1], args[2], args[3], args[4], args[5]
		step = mt.Transform{
			{a, c, e},
			{b, d, f},
			{0, 0, 1},
		}
	case "translate":
		switch len(args) {
		case 1:
			step.Translate(args[0], 0)
		case 2:
			step.Translate(args[0], args[1])
		default:
			return step, arity("1 or 2")
		}
	case "scale":
		switch len(args) {
		case 1:
			step.Scale(args[0], args[0])
		case 2:
			step.Scale(args[0], args[1])
		default:
			return step, arity("1 or 2")
		}
	case "rotate":
		switch len(args) {
		case 1:
			step.RotateOrigin(radians(args[0]))
		case 3:
			// RotatePoint translates back by (-x, -x), so compose by hand
			step.Translate(args[1], args[2])
			step.RotateOrigin(radians(args[0]))
			step.Translate(-args[1], -args[2])
		default:
			return step, arity("1 or 3")
		}
	case "skewX":
		if len(args) != 1 {
			return step, arity("1")
		}
		step.SkewX(radians(args[0]))
	case "skewY":
		if len(args) != 1 {
			return step, arity("1")
		}
		step.SkewY(radians(args[0]))
	default:
		return step, fmt.Errorf("%w: %s", ErrUnsupportedTransform, name)
	}
	return step, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
