package errors

import (
	"github.com/vortex-fintech/go-iban/iban"
)

// IBANDomain is set as ErrorInfo.Domain on responses built by FromIBAN.
const IBANDomain = "iban"

// FromIBAN maps an iban.Check error on field to an InvalidArgument response
// with one violation carrying the iban reason code. ok is false for a nil err.
func FromIBAN(field string, err error) (resp ErrorResponse, ok bool) {
	if err == nil {
		return ErrorResponse{}, false
	}

	reason := iban.Reason(err)
	return ValidationViolations([]FieldViolation{{
		Field:       field,
		Reason:      reason,
		Description: describeIBAN(reason),
	}}).WithDomain(IBANDomain), true
}

func describeIBAN(reason string) string {
	switch reason {
	case iban.ReasonUnsupportedCountry:
		return "country code is not supported"
	case iban.ReasonInvalidLength:
		return "length does not match the country format"
	case iban.ReasonInvalidChecksum:
		return "check digits do not match"
	default:
		return "invalid IBAN"
	}
}
