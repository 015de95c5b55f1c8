package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// otherCountry labels inputs whose prefix is not in the length table, so
// arbitrary user input cannot grow label cardinality.
const otherCountry = "other"

// ValidationMetrics counts IBAN validations by country and result.
// It satisfies iban.Observer.
type ValidationMetrics struct {
	total *prometheus.CounterVec
}

// NewValidationMetrics creates and registers iban_validations_total under
// namespace/subsystem. A collector that is already registered is reused.
func NewValidationMetrics(reg prometheus.Registerer, namespace, subsystem string) (*ValidationMetrics, error) {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "iban_validations_total", Help: "IBAN validations by country and result",
	}, []string{"country", "result"})

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(total); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		total = existing
	}
	return &ValidationMetrics{total: total}, nil
}

func (m *ValidationMetrics) ObserveValidation(country, result string) {
	if m == nil {
		return
	}
	if country == "" {
		country = otherCountry
	}
	m.total.WithLabelValues(country, result).Inc()
}
