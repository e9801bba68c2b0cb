package records

import (
	"time"

	"vet-clinic-records/internal/domain/records/details"
)

// MedicalRecord es el agregado: exactamente una variante de detalle más la
// metadata del registro. Type siempre refleja details.Type() y Status el
// estado interno de la variante (vacío para variantes sin ciclo de vida).
type MedicalRecord struct {
	ID       string
	PetID    string
	ClinicID string

	Type   details.Type
	Status string

	VeterinarianID string
	Notes          string

	Details details.Detail

	// Una corrección nunca edita la historia: crea un registro nuevo que
	// referencia al original y lleva el motivo.
	CorrectedFromID  string
	CorrectionReason string

	RecordedAt time.Time
	UpdatedAt  time.Time
}

// StatusOf devuelve el estado interno de la variante, o "" si no tiene
// ciclo de vida.
func StatusOf(d details.Detail) string {
	switch v := d.(type) {
	case details.Surgery:
		return string(v.Status)
	case details.Hospitalization:
		return string(v.Status)
	case details.Treatment:
		return string(v.Status)
	default:
		return ""
	}
}
