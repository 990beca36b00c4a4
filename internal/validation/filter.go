package validation

import "strings"

// KeepDigits strips every non-digit character. It is applied while typing
// quantity and identifier inputs.
func KeepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// KeepDecimal strips everything but digits and the first decimal point.
func KeepDecimal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	dot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '.' && !dot:
			dot = true
			b.WriteByte(c)
		}
	}
	return b.String()
}
