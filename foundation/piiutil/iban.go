package piiutil

import "strings"

const (
	ibanKeepHead = 2 // country code
	ibanKeepTail = 4
)

// MaskIBAN keeps the country code and the last four characters of an account
// number and masks everything in between. Inputs too short to keep both ends
// are masked except for the final significant character.
//
// Examples:
//
//	"DE22790200760027913168" -> "DE****************3168"
//	"DE2279"                 -> "*****9"
//	""                       -> ""
func MaskIBAN(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	runes := []rune(s)
	n := len(runes)
	if n <= ibanKeepHead+ibanKeepTail {
		return maskLettersAndDigitsKeepLast(runes, 1)
	}

	for i := ibanKeepHead; i < n-ibanKeepTail; i++ {
		runes[i] = '*'
	}
	return string(runes)
}
