package svg

import (
	"fmt"
	"unicode"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// commandArity is the operand group size of every path command the
// grammar knows about.
var commandArity = map[rune]int{
	'a': 7,
	'c': 6,
	'h': 1,
	'l': 2,
	'm': 2,
	'q': 4,
	's': 4,
	't': 2,
	'v': 1,
	'z': 0,
}

// ParseOption configures ParsePath.
type ParseOption func(*parseOptions)

type parseOptions struct {
	transform mt.Transform
}

func defaultParseOptions() parseOptions {
	return parseOptions{transform: mt.Identity()}
}

// WithTransform applies t to every coordinate the parser emits. Opaque
// instructions keep their raw operands.
func WithTransform(t mt.Transform) ParseOption {
	return func(o *parseOptions) {
		o.transform = t
	}
}

type pathDescriptionParser struct {
	lex            *scanner
	x, y           float64
	startX, startY float64
	transform      mt.Transform
	axisAligned    bool
	out            Instructions
}

// ParsePath turns a path description into instructions. Relative commands
// are resolved to absolute coordinates. Extra operand groups repeat their
// command, and extra pairs after a move continue as lines.
func ParsePath(d string, opts ...ParseOption) (Instructions, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pdp := &pathDescriptionParser{transform: o.transform}
	pdp.axisAligned = pdp.preservesAxes()

	sc, err := lex("path", d)
	if err != nil {
		return nil, err
	}
	pdp.lex = sc
	for {
		i := pdp.lex.next()
		switch i.Type {
		case gl.ItemEOS:
			return pdp.out, nil
		case gl.ItemLetter, gl.ItemWord:
			// adjacent commands such as "ZM" arrive as one item
			for _, c := range i.Value {
				if err := pdp.parseCommand(c); err != nil {
					return nil, err
				}
			}
		case gl.ItemWSP, gl.ItemComma:
		default:
			return nil, fmt.Errorf("%w: expected command, got %q", ErrUnexpectedToken, i.Value)
		}
	}
}

func (pdp *pathDescriptionParser) parseCommand(c rune) error {
	arity, ok := commandArity[unicode.ToLower(c)]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUnexpectedToken, c)
	}
	if arity == 0 {
		pdp.closePath()
		return nil
	}

	for first := true; first || peekNumber(pdp.lex); first = false {
		args, err := parseNumbers(pdp.lex, arity)
		if err != nil {
			return fmt.Errorf("parsing %c: %w", c, err)
		}
		pdp.emit(c, args)

		switch c {
		case 'M':
			c = 'L'
		case 'm':
			c = 'l'
		}
	}
	return nil
}

func (pdp *pathDescriptionParser) emit(c rune, args []float64) {
	var ox, oy float64
	if unicode.IsLower(c) {
		ox, oy = pdp.x, pdp.y
	}

	switch unicode.ToUpper(c) {
	case 'M':
		pdp.x, pdp.y = ox+args[0], oy+args[1]
		pdp.startX, pdp.startY = pdp.x, pdp.y
		x, y := pdp.apply(pdp.x, pdp.y)
		pdp.out = append(pdp.out, MoveTo{X: x, Y: y})
	case 'L':
		pdp.x, pdp.y = ox+args[0], oy+args[1]
		x, y := pdp.apply(pdp.x, pdp.y)
		pdp.out = append(pdp.out, LineTo{X: x, Y: y})
	case 'H':
		pdp.x = ox + args[0]
		x, y := pdp.apply(pdp.x, pdp.y)
		if pdp.axisAligned {
			pdp.out = append(pdp.out, HLineTo{X: x})
		} else {
			pdp.out = append(pdp.out, LineTo{X: x, Y: y})
		}
	case 'V':
		pdp.y = oy + args[0]
		x, y := pdp.apply(pdp.x, pdp.y)
		if pdp.axisAligned {
			pdp.out = append(pdp.out, VLineTo{Y: y})
		} else {
			pdp.out = append(pdp.out, LineTo{X: x, Y: y})
		}
	case 'C':
		var cv CurveTo
		cv.C1[0], cv.C1[1] = pdp.apply(ox+args[0], oy+args[1])
		cv.C2[0], cv.C2[1] = pdp.apply(ox+args[2], oy+args[3])
		pdp.x, pdp.y = ox+args[4], oy+args[5]
		cv.T[0], cv.T[1] = pdp.apply(pdp.x, pdp.y)
		pdp.out = append(pdp.out, cv)
	default:
		// The last pair of every other command is its end point.
		n := len(args)
		pdp.x, pdp.y = ox+args[n-2], oy+args[n-1]
		pdp.out = append(pdp.out, Other{Tag: string(c), Args: args})
	}
}

func (pdp *pathDescriptionParser) closePath() {
	pdp.x, pdp.y = pdp.startX, pdp.startY
	pdp.out = append(pdp.out, ClosePath{})
}

func (pdp *pathDescriptionParser) apply(x, y float64) (float64, float64) {
	return pdp.transform.Apply(x, y)
}

// preservesAxes reports whether horizontal and vertical lines stay
// horizontal and vertical under the parser's transform.
func (pdp *pathDescriptionParser) preservesAxes() bool {
	ox, oy := pdp.apply(0, 0)
	_, hy := pdp.apply(1, 0)
	vx, _ := pdp.apply(0, 1)
	return hy == oy && vx == ox
}
