package iban

// Rearrange moves the first four characters of s (country code and check
// digits) to the end. Inputs shorter than four characters are returned as is,
// which matches slicing that clamps at the end of the string.
func Rearrange(s string) string {
	i := runeOffset(s, prefixLen)
	return s[i:] + s[:i]
}

// runeOffset returns the byte offset of the n-th rune of s, clamped to len(s).
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
