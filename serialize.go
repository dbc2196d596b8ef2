package svg

import (
	"strconv"
	"strings"
)

// Serialize renders instructions as path syntax: the command letter and
// its operands separated by spaces, one instruction per line. Every line,
// the last included, ends in a newline.
func Serialize(in Instructions) string {
	var b strings.Builder
	for _, i := range in {
		b.WriteString(i.Command())
		for _, v := range i.Operands() {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
