package iban

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// prefixLen is the country code plus the two check digits.
const prefixLen = 4

var ErrInvalidTable = errors.New("iban: invalid length table")

// Lengths maps a two-letter country code to the expected total IBAN length.
// A Lengths value is never mutated after construction and is safe for
// concurrent reads.
type Lengths struct {
	m map[string]int
}

var defaultLengths = Lengths{m: map[string]int{
	"AT": 20,
	"BE": 16,
	"CZ": 24,
	"DE": 22,
	"DK": 18,
	"FR": 27,
}}

// DefaultLengths returns the built-in country table.
func DefaultLengths() Lengths {
	return defaultLengths
}

// NewLengths builds a table from m. Keys must be two uppercase ASCII letters
// and every length must exceed the four-character prefix.
func NewLengths(m map[string]int) (Lengths, error) {
	out := make(map[string]int, len(m))
	for code, n := range m {
		if err := validateEntry(code, n); err != nil {
			return Lengths{}, err
		}
		out[code] = n
	}
	return Lengths{m: out}, nil
}

// With returns a copy of l extended (or overridden) with code -> n.
func (l Lengths) With(code string, n int) (Lengths, error) {
	if err := validateEntry(code, n); err != nil {
		return Lengths{}, err
	}
	out := make(map[string]int, len(l.m)+1)
	for k, v := range l.m {
		out[k] = v
	}
	out[code] = n
	return Lengths{m: out}, nil
}

// Len reports the registered length for code.
func (l Lengths) Len(code string) (int, bool) {
	n, ok := l.m[code]
	return n, ok
}

// Codes returns the registered country codes in ascending order.
func (l Lengths) Codes() []string {
	out := make([]string, 0, len(l.m))
	for k := range l.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CheckLength reports whether s starts with a known country code and has
// exactly the registered length. The code is matched case-sensitively.
func (l Lengths) CheckLength(s string) bool {
	return l.checkLength(s) == nil
}

func (l Lengths) checkLength(s string) error {
	code := countryCode(s)
	want, ok := l.m[code]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedCountry, code)
	}
	if got := utf8.RuneCountInString(s); got != want {
		return fmt.Errorf("%w: %s expects %d characters, got %d", ErrInvalidLength, code, want, got)
	}
	return nil
}

// CheckLength runs Lengths.CheckLength against the default table.
func CheckLength(s string) bool {
	return defaultLengths.CheckLength(s)
}

// countryCode returns the first two characters of s, or fewer if s is short.
func countryCode(s string) string {
	i, n := 0, 0
	for n < 2 && i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n++
	}
	return s[:i]
}

func validateEntry(code string, n int) error {
	if len(code) != 2 || !isUpperASCII(code[0]) || !isUpperASCII(code[1]) {
		return fmt.Errorf("%w: country code %q must be two uppercase letters", ErrInvalidTable, code)
	}
	if n <= prefixLen {
		return fmt.Errorf("%w: length %d for %s must exceed %d", ErrInvalidTable, n, code, prefixLen)
	}
	return nil
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
