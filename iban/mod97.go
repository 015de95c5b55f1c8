package iban

import "strconv"

const modulus = 97

// Mod97 computes the value of the concatenated chunks modulo 97 without
// big-integer arithmetic. A chunk of exactly nine digits starts a fresh
// remainder; any other chunk is prefixed with the running remainder before
// reducing. With chunks from Segment only the first chunk can be nine digits
// long: the loop there stops once fewer than nine digits remain.
//
// The result is in [0, 96]. Non-digit bytes in a chunk are ignored.
func Mod97(chunks []string) int {
	n := 0
	for _, c := range chunks {
		if len(c) == firstChunkLen {
			n = remainder(c)
			continue
		}
		n = remainder(strconv.Itoa(n) + c)
	}
	return n
}

// remainder returns the decimal value of s modulo 97. Digits are folded one
// at a time, so arbitrarily long chunks cannot overflow.
func remainder(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		d := s[i]
		if d < '0' || d > '9' {
			continue
		}
		n = (n*10 + int(d-'0')) % modulus
	}
	return n
}
