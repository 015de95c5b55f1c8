package iban

const (
	firstChunkLen = 9
	chunkLen      = 7
)

// Segment splits a digit string into chunks for Mod97: the first chunk holds
// up to nine digits, following chunks hold seven while at least nine digits
// remain, and the final chunk holds the rest. The final chunk is always
// emitted, so it may be empty.
//
//	Segment("790200760027913168131422") == []string{"790200760", "0279131", "68131422"}
func Segment(digits string) []string {
	first := min(firstChunkLen, len(digits))
	chunks := []string{digits[:first]}
	rest := digits[first:]

	for len(rest) >= firstChunkLen {
		chunks = append(chunks, rest[:chunkLen])
		rest = rest[chunkLen:]
	}
	return append(chunks, rest)
}
