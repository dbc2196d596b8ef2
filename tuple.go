package svg

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("%w: expected number, got %q", ErrUnexpectedToken, i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnexpectedToken, err)
	}
	return n, nil
}

// consumeSeparators skips whitespace and commas between operands.
func consumeSeparators(sc *scanner) {
	sc.skip(gl.ItemWSP)
	sc.skip(gl.ItemComma)
	sc.skip(gl.ItemWSP)
}

// parseNumbers reads exactly n numbers separated by whitespace or commas.
func parseNumbers(sc *scanner, n int) ([]float64, error) {
	args := make([]float64, n)
	for k := range args {
		consumeSeparators(sc)
		v, err := parseNumber(sc.next())
		if err != nil {
			return nil, fmt.Errorf("operand %d of %d: %w", k+1, n, err)
		}
		args[k] = v
	}
	return args, nil
}

// peekNumber reports whether another operand follows.
func peekNumber(sc *scanner) bool {
	consumeSeparators(sc)
	return sc.peek().Type == gl.ItemNumber
}
