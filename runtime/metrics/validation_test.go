package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vortex-fintech/go-iban/iban"
)

var _ iban.Observer = (*ValidationMetrics)(nil)

func TestValidationMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewValidationMetrics(reg, "test", "payouts")
	if err != nil {
		t.Fatalf("NewValidationMetrics: %v", err)
	}

	v := iban.New(iban.Options{Observer: m})
	v.Validate("DE22790200760027913168")
	v.Validate("DE22790200760027913168")
	v.Validate("DE21790200760027913168")
	v.Validate("XX00")
	v.Validate("")

	if got, want := testutil.ToFloat64(m.total.WithLabelValues("DE", iban.ReasonOK)), 2.0; got != want {
		t.Fatalf("DE ok = %v, want %v", got, want)
	}
	if got, want := testutil.ToFloat64(m.total.WithLabelValues("DE", iban.ReasonInvalidChecksum)), 1.0; got != want {
		t.Fatalf("DE invalid_checksum = %v, want %v", got, want)
	}
	if got, want := testutil.ToFloat64(m.total.WithLabelValues(otherCountry, iban.ReasonUnsupportedCountry)), 2.0; got != want {
		t.Fatalf("other unsupported_country = %v, want %v", got, want)
	}
	if got, want := testutil.CollectAndCount(m.total), 3; got != want {
		t.Fatalf("series = %d, want %d", got, want)
	}
}

func TestNewValidationMetrics_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m1, err := NewValidationMetrics(reg, "test", "")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	m2, err := NewValidationMetrics(reg, "test", "")
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	m1.ObserveValidation("AT", iban.ReasonOK)
	m2.ObserveValidation("AT", iban.ReasonOK)

	if got := testutil.ToFloat64(m1.total.WithLabelValues("AT", iban.ReasonOK)); got != 2 {
		t.Fatalf("shared counter = %v, want 2", got)
	}
}

func TestObserveValidation_NilReceiver(t *testing.T) {
	var m *ValidationMetrics
	m.ObserveValidation("DE", iban.ReasonOK)
}
