package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// BookMetrics: счётчики операций адресной книги.
// A nil *BookMetrics is valid and records nothing.
type BookMetrics struct {
	Operations *prometheus.CounterVec
	Contacts   prometheus.Gauge
}

func NewBookMetrics(reg prometheus.Registerer) *BookMetrics {
	m := &BookMetrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addressbook",
			Name:      "operations_total",
			Help:      "Address book operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		Contacts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "addressbook",
			Name:      "contacts",
			Help:      "Number of contacts currently stored.",
		}),
	}
	if reg == nil {
		return m
	}

	m.Operations = registerCollector(reg, m.Operations)
	m.Contacts = registerCollector(reg, m.Contacts)
	return m
}

// registerCollector returns the already registered collector when one with the
// same descriptor exists, so two books can share a registry.
func registerCollector[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		// Иные ошибки игнорируем: метрики не должны ломать книгу.
	}
	return c
}

func (m *BookMetrics) Observe(op, outcome string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
}

func (m *BookMetrics) SetContacts(n int) {
	if m == nil {
		return
	}
	m.Contacts.Set(float64(n))
}
