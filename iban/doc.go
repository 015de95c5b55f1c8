// Package iban validates International Bank Account Numbers with the
// ISO 7064 mod-97-10 checksum.
//
// The pipeline is: length check against a per-country table, rearrangement
// of the first four characters to the end, letter-to-digit conversion,
// segmentation into chunks that fit native integers, and an incremental
// mod-97 over those chunks. An IBAN is valid when the remainder is 1.
//
// Only the overall length is checked; BBAN sub-field formats are not.
// Input is expected without spaces; no normalization is performed.
package iban
