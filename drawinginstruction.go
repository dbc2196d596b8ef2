package svg

// InstructionType identifies the path command an Instruction carries.
type InstructionType int

// These are the instruction kinds the warper understands. Anything else
// is carried as OtherInstruction and passed through untouched.
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	HLineInstruction
	VLineInstruction
	CurveInstruction
	CloseInstruction
	OtherInstruction
)

func (k InstructionType) String() string {
	switch k {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case HLineInstruction:
		return "hline"
	case VLineInstruction:
		return "vline"
	case CurveInstruction:
		return "curve"
	case CloseInstruction:
		return "close"
	}
	return "other"
}

// Instruction is a single drawing command of a path. The concrete types
// below are the only implementations; switch on them to reach the named
// operands.
type Instruction interface {
	Kind() InstructionType
	// Command returns the path command letter, e.g. "M".
	Command() string
	// Operands returns the numeric arguments in path syntax order.
	Operands() []float64
}

// Instructions is an ordered path. Each instruction after the first may
// depend on the terminal point of the one before it.
type Instructions []Instruction

// String renders the path in the one-instruction-per-line form.
func (in Instructions) String() string {
	return Serialize(in)
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float64
}

func (MoveTo) Kind() InstructionType { return MoveInstruction }
func (MoveTo) Command() string { return "M" }
func (m MoveTo) Operands() []float64 { return []float64{m.X, m.Y} }

// LineTo draws a straight line to (X, Y).
type LineTo struct {
	X, Y float64
}

func (LineTo) Kind() InstructionType { return LineInstruction }
func (LineTo) Command() string { return "L" }
func (l LineTo) Operands() []float64 { return []float64{l.X, l.Y} }

// HLineTo draws a horizontal line to X. Its y is the previous point's.
type HLineTo struct {
	X float64
}

func (HLineTo) Kind() InstructionType { return HLineInstruction }
func (HLineTo) Command() string { return "H" }
func (h HLineTo) Operands() []float64 { return []float64{h.X} }

// VLineTo draws a vertical line to Y. Its x is the previous point's.
type VLineTo struct {
	Y float64
}

func (VLineTo) Kind() InstructionType { return VLineInstruction }
func (VLineTo) Command() string { return "V" }
func (v VLineTo) Operands() []float64 { return []float64{v.Y} }

// CurveTo is a cubic Bézier with control points C1, C2 ending at T.
type CurveTo struct {
	C1, C2, T Tuple
}

func (CurveTo) Kind() InstructionType { return CurveInstruction }
func (CurveTo) Command() string { return "C" }
func (c CurveTo) Operands() []float64 {
	return []float64{c.C1[0], c.C1[1], c.C2[0], c.C2[1], c.T[0], c.T[1]}
}

// ClosePath closes the current subpath.
type ClosePath struct{}

func (ClosePath) Kind() InstructionType { return CloseInstruction }
func (ClosePath) Command() string { return "Z" }
func (ClosePath) Operands() []float64 { return nil }

// Other is any command outside M, L, H, V, C and Z. It is opaque: the
// tag and raw arguments are kept exactly as parsed.
type Other struct {
	Tag  string
	Args []float64
}

func (Other) Kind() InstructionType { return OtherInstruction }
func (o Other) Command() string { return o.Tag }
func (o Other) Operands() []float64 { return o.Args }
