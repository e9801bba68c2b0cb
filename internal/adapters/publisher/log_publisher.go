package publisher

import (
	"context"
	"encoding/json"

	"vet-clinic-records/internal/domain/records"
	"vet-clinic-records/internal/platform/logger"
)

// LogPublisher publica eventos de dominio como logs estructurados. Sirve de
// transporte por defecto hasta que haya un broker real detrás del puerto.
type LogPublisher struct {
	log logger.Logger
}

func NewLogPublisher(log logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, e records.DomainEvent) {
	fields := map[string]any{"event": e.Name()}

	// Los eventos son structs planos serializables; el payload va entero.
	if b, err := json.Marshal(e); err == nil {
		fields["payload"] = json.RawMessage(b)
	}

	p.log.Info("domain_event", fields)
}
