package piiutil

import "unicode"

// maskLettersAndDigitsKeepLast masks all letters/digits except the last keep
// significant ones. Separators are left untouched.
func maskLettersAndDigitsKeepLast(runes []rune, keep int) string {
	if len(runes) == 0 {
		return ""
	}
	if keep < 1 {
		keep = 1
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}
