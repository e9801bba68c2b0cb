package records

import (
	"context"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/records/details"
)

// DomainEvent es lo que el core entrega al puerto de publicación. El core
// solo construye los eventos; transporte y durabilidad son externos.
type DomainEvent interface {
	Name() string
}

// Publisher es el puerto de salida hacia el transporte de eventos.
type Publisher interface {
	Publish(ctx context.Context, e DomainEvent)
}

type EventMeta struct {
	OccurredAt time.Time `json:"occurred_at"`
	Version    int       `json:"version"`
}

func newMeta(now time.Time) EventMeta {
	return EventMeta{OccurredAt: now, Version: 1}
}

type RecordCreatedEvent struct {
	EventMeta
	RecordID string       `json:"record_id"`
	PetID    string       `json:"pet_id"`
	ClinicID string       `json:"clinic_id"`
	Type     details.Type `json:"type"`
}

func (RecordCreatedEvent) Name() string { return "medical_record.created" }

type StatusChangedEvent struct {
	EventMeta
	RecordID       string       `json:"record_id"`
	Type           details.Type `json:"type"`
	PreviousStatus string       `json:"previous_status"`
	NewStatus      string       `json:"new_status"`
	VeterinarianID string       `json:"veterinarian_id"`
}

// Name deriva el nombre de la variante: surgery.status_changed, etc.
func (e StatusChangedEvent) Name() string {
	return strings.ToLower(string(e.Type)) + ".status_changed"
}

type CorrectionCreatedEvent struct {
	EventMeta
	CorrectedID string `json:"corrected_id"`
	OriginalID  string `json:"original_id"`
	Reason      string `json:"reason"`
}

func (CorrectionCreatedEvent) Name() string { return "medical_record.correction_created" }

type RecordCorrectedEvent struct {
	EventMeta
	OriginalID  string `json:"original_id"`
	CorrectedID string `json:"corrected_id"`
	Reason      string `json:"reason"`
}

func (RecordCorrectedEvent) Name() string { return "medical_record.corrected" }
