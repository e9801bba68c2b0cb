package details

import "time"

// Hospitalization registra una internación, con ciclo de vida:
// SCHEDULED -> ADMITTED -> IN_PROGRESS -> COMPLETED | DECEASED,
// con cancelación posible solo desde SCHEDULED.
type Hospitalization struct {
	AdmissionDate        time.Time             `json:"admission_date"`
	DischargeDate        *time.Time            `json:"discharge_date,omitempty"`
	Reason               string                `json:"reason"`
	DiagnosisAtAdmission string                `json:"diagnosis_at_admission"`
	IntensiveCare        bool                  `json:"intensive_care"`
	Ward                 string                `json:"ward"`
	Notes                string                `json:"notes"`
	Status               HospitalizationStatus `json:"status"`
}

func (Hospitalization) Type() Type { return TypeHospitalization }
func (Hospitalization) isDetail()  {}

func (h Hospitalization) Validate() error {
	if h.AdmissionDate.IsZero() {
		return invalid("admission_date", "required")
	}
	if h.AdmissionDate.After(time.Now()) {
		return invalid("admission_date", "must not be in the future")
	}
	if h.DischargeDate != nil && h.DischargeDate.Before(h.AdmissionDate) {
		return invalid("discharge_date", "must not precede admission date")
	}
	if blank(h.Reason) {
		return invalid("reason", "required")
	}
	if blank(h.DiagnosisAtAdmission) {
		return invalid("diagnosis_at_admission", "required")
	}
	if blank(h.Ward) {
		return invalid("ward", "required")
	}
	if blank(h.Notes) {
		return invalid("notes", "required")
	}
	if !h.Status.valid() {
		return invalid("status", "required")
	}
	return nil
}

// Apply avanza el ciclo de vida con el mismo esquema candidato-validar.
func (h Hospitalization) Apply(action Action) (Hospitalization, StatusChange, error) {
	to, err := h.Status.Next(action)
	if err != nil {
		return h, StatusChange{}, err
	}

	cand := h
	cand.Status = to
	if err := cand.Validate(); err != nil {
		return h, StatusChange{}, err
	}
	return cand, StatusChange{Previous: string(h.Status), New: string(to)}, nil
}

// CanCorrect: solo los campos clínicos (motivo, diagnóstico de ingreso,
// notas, sala, cuidados intensivos) son corregibles; fechas y estado deben
// coincidir con el original. Una variante distinta es false, no error.
func (h Hospitalization) CanCorrect(prev Detail) (bool, error) {
	p, ok := prev.(Hospitalization)
	if !ok {
		return false, nil
	}
	if !h.AdmissionDate.Equal(p.AdmissionDate) {
		return false, nil
	}
	if !timesEqual(h.DischargeDate, p.DischargeDate) {
		return false, nil
	}
	if h.Status != p.Status {
		return false, nil
	}
	return true, nil
}
