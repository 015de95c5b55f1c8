package iban

import (
	"strings"
)

// ToNumeric uppercases s and replaces every letter with its two-digit value
// (A=10 ... Z=35). ASCII digits pass through. Any other character is dropped
// from the result rather than treated as an error.
func ToNumeric(s string) string {
	s = strings.ToUpper(s)

	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			v := r - 'A' + 10
			b.WriteByte(byte('0' + v/10))
			b.WriteByte(byte('0' + v%10))
		}
	}
	return b.String()
}
