package svg

import (
	"fmt"
	"strings"
	"unicode/utf8"

	gl "github.com/rustyoz/genericlexer"
)

// scanner holds the items of one complete lexer run.
type scanner struct {
	items []gl.Item
	pos   int
}

// lex runs the lexer over s until it closes its channel, so no lexer
// goroutine outlives the call. The lexer stops quietly at a character it
// does not know; whatever it did not consume is reported as an
// unexpected token.
func lex(name, s string) (*scanner, error) {
	norm, offsets := normalize(s)

	_, items := gl.Lex(name, norm)
	sc := &scanner{}
	consumed := 0
	for i := range items {
		if i.Type == gl.ItemEOS {
			continue
		}
		consumed += len(i.Value)
		sc.items = append(sc.items, i)
	}

	if consumed < len(norm) {
		at := offsets[consumed]
		r, _ := utf8.DecodeRuneInString(s[at:])
		return nil, fmt.Errorf("%w: %q at offset %d", ErrUnexpectedToken, r, at)
	}
	return sc, nil
}

func (sc *scanner) next() gl.Item {
	i := sc.peek()
	if sc.pos < len(sc.items) {
		sc.pos++
	}
	return i
}

func (sc *scanner) peek() gl.Item {
	if sc.pos >= len(sc.items) {
		return gl.Item{Type: gl.ItemEOS}
	}
	return sc.items[sc.pos]
}

func (sc *scanner) skip(t gl.ItemType) {
	for sc.peek().Type == t {
		sc.pos++
	}
}

// normalize rewrites s into the number syntax the lexer scans. Carriage
// returns and form feeds become spaces, a bare leading dot gets a zero,
// exponents are lower case, and numbers that run into each other
// ("10-5", "0.5.5") are split with a space. offsets maps every byte of
// the result back to its byte in s.
func normalize(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s))
	put := func(c byte, at int) {
		b.WriteByte(c)
		offsets = append(offsets, at)
	}

	var inNumber, dot, exp bool
	var prev byte
	for k := 0; k < len(s); k++ {
		c := s[k]
		switch {
		case c >= '0' && c <= '9':
			if !inNumber {
				inNumber, dot, exp = true, false, false
			}
		case c == '.':
			if inNumber && !dot && !exp {
				dot = true
				break
			}
			if inNumber {
				put(' ', k)
			}
			put('0', k)
			inNumber, dot, exp = true, true, false
		case (c == 'e' || c == 'E') && inNumber && !exp && (isDigit(prev) || prev == '.'):
			c = 'e'
			exp = true
		case c == '+' || c == '-':
			if inNumber && prev == 'e' {
				break
			}
			if inNumber {
				put(' ', k)
			}
			inNumber, dot, exp = true, false, false
		case c == '\r' || c == '\f':
			c = ' '
			inNumber = false
		default:
			inNumber = false
		}
		put(c, k)
		prev = c
	}
	return b.String(), offsets
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
