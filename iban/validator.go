package iban

import (
	"context"

	"github.com/vortex-fintech/go-iban/foundation/logger"
	"github.com/vortex-fintech/go-iban/foundation/piiutil"
)

// Observer receives one call per validation. country is the registered
// country code of the input, or "" when the prefix is not in the table.
// result is a reason code (see Reason).
type Observer interface {
	ObserveValidation(country, result string)
}

type Options struct {
	// Lengths is the country table; the zero value selects DefaultLengths.
	Lengths Lengths

	Logger   logger.LoggerInterface
	Observer Observer
}

// Validator checks IBANs against a fixed table and reports outcomes to a
// logger and an observer. It is immutable and safe for concurrent use.
type Validator struct {
	lengths Lengths
	log     logger.LoggerInterface
	obs     Observer
}

func New(opts Options) *Validator {
	v := &Validator{
		lengths: opts.Lengths,
		log:     opts.Logger,
		obs:     opts.Observer,
	}
	if v.lengths.m == nil {
		v.lengths = defaultLengths
	}
	if v.log == nil {
		v.log = logger.Nop()
	}
	return v
}

func (v *Validator) Lengths() Lengths { return v.lengths }

func (v *Validator) Validate(s string) bool {
	return v.CheckContext(context.Background(), s) == nil
}

func (v *Validator) Check(s string) error {
	return v.CheckContext(context.Background(), s)
}

// CheckContext is Check; ctx only contributes trace and request ids to logs.
func (v *Validator) CheckContext(ctx context.Context, s string) error {
	err := check(v.lengths, s)
	reason := Reason(err)

	if v.obs != nil {
		country := countryCode(s)
		if _, ok := v.lengths.Len(country); !ok {
			country = ""
		}
		v.obs.ObserveValidation(country, reason)
	}

	if err != nil {
		v.log.DebugwCtx(ctx, "iban rejected",
			"iban", piiutil.MaskIBAN(s),
			"reason", reason,
		)
	}
	return err
}
