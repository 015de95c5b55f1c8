package iban

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedCountry = errors.New("iban: unsupported country")
	ErrInvalidLength      = errors.New("iban: invalid length")
	ErrInvalidChecksum    = errors.New("iban: invalid checksum")
)

// Stable machine-readable reason codes returned by Reason.
const (
	ReasonOK                 = "ok"
	ReasonUnsupportedCountry = "unsupported_country"
	ReasonInvalidLength      = "invalid_length"
	ReasonInvalidChecksum    = "invalid_checksum"
	ReasonInvalid            = "invalid"
)

// Validate reports whether s is a valid IBAN for the default table.
// It never panics; every input maps to true or false.
func Validate(s string) bool {
	return check(defaultLengths, s) == nil
}

// Check is Validate with the failure reason: it returns nil for a valid IBAN,
// or an error matching ErrUnsupportedCountry, ErrInvalidLength or
// ErrInvalidChecksum via errors.Is.
func Check(s string) error {
	return check(defaultLengths, s)
}

// Reason maps an error returned by Check to a stable reason code.
func Reason(err error) string {
	switch {
	case err == nil:
		return ReasonOK
	case errors.Is(err, ErrUnsupportedCountry):
		return ReasonUnsupportedCountry
	case errors.Is(err, ErrInvalidLength):
		return ReasonInvalidLength
	case errors.Is(err, ErrInvalidChecksum):
		return ReasonInvalidChecksum
	default:
		return ReasonInvalid
	}
}

func check(l Lengths, s string) error {
	if err := l.checkLength(s); err != nil {
		return err
	}
	if r := Mod97(Segment(ToNumeric(Rearrange(s)))); r != 1 {
		return fmt.Errorf("%w: remainder %d", ErrInvalidChecksum, r)
	}
	return nil
}
