package svg

import "errors"

var (
	// ErrDegenerateGuide is returned when a guide has no horizontal extent.
	ErrDegenerateGuide = errors.New("svg: guide segment has zero x-span")

	// ErrShortGuide is returned when a guide path has fewer than two vertices.
	ErrShortGuide = errors.New("svg: guide path needs two vertices")

	// ErrMissingPreviousPoint is returned when an H or V instruction has no
	// preceding point to inherit its implicit coordinate from.
	ErrMissingPreviousPoint = errors.New("svg: missing previous point")

	// ErrUnexpectedToken is returned for malformed path or transform syntax.
	ErrUnexpectedToken = errors.New("svg: unexpected token")

	// ErrUnsupportedTransform is returned for transform functions other than
	// matrix, translate, scale, rotate, skewX and skewY.
	ErrUnsupportedTransform = errors.New("svg: unsupported transform")

	// ErrUnsupportedInstruction is returned when an opaque instruction reaches
	// code that has to draw it.
	ErrUnsupportedInstruction = errors.New("svg: unsupported instruction")

	// ErrNotFound is returned when a document has no element with an id.
	ErrNotFound = errors.New("svg: element not found")
)
