package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics concentra los contadores del módulo de registros médicos.
type Metrics struct {
	RecordsCreated    *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec
	Corrections       prometheus.Counter
}

// New registra las métricas en el registry por defecto. Llamar una sola vez.
func New() *Metrics {
	return &Metrics{
		RecordsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vetclinic_records_created_total",
			Help: "Total number of medical records created, by record type",
		}, []string{"type"}),
		StatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vetclinic_status_transitions_total",
			Help: "Total number of lifecycle transitions applied, by record type and action",
		}, []string{"type", "action"}),
		Corrections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vetclinic_corrections_total",
			Help: "Total number of correction records created",
		}),
	}
}

func (m *Metrics) RecordCreated(recordType string) {
	m.RecordsCreated.WithLabelValues(recordType).Inc()
}

func (m *Metrics) StatusTransition(recordType, action string) {
	m.StatusTransitions.WithLabelValues(recordType, action).Inc()
}

func (m *Metrics) CorrectionCreated() {
	m.Corrections.Inc()
}
