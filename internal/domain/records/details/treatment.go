package details

import "time"

// Treatment registra un tratamiento prolongado, con ciclo de vida:
// PLANNED -> ACTIVE -> SUSPENDED | FINISHED, y reactivación desde SUSPENDED.
type Treatment struct {
	Name         string                `json:"name"`
	StartDate    time.Time             `json:"start_date"`
	Instructions string                `json:"instructions"`
	EndDate      *time.Time            `json:"end_date,omitempty"`
	Medications  []TreatmentMedication `json:"medications,omitempty"`
	FollowUp     FollowUp              `json:"follow_up"`
	Status       TreatmentStatus       `json:"status"`
}

func (Treatment) Type() Type { return TypeTreatment }
func (Treatment) isDetail()  {}

func (t Treatment) Validate() error {
	if blank(t.Name) {
		return invalid("name", "required")
	}
	if t.StartDate.IsZero() {
		return invalid("start_date", "required")
	}
	if t.StartDate.After(time.Now()) {
		return invalid("start_date", "must not be in the future")
	}
	if blank(t.Instructions) {
		return invalid("instructions", "required")
	}
	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		return invalid("end_date", "must not precede start date")
	}
	if t.FollowUp.Required && t.FollowUp.Date == nil {
		return invalid("follow_up.date", "required when follow-up is required")
	}
	if !t.FollowUp.Required && t.FollowUp.Date != nil {
		return invalid("follow_up.date", "not allowed when follow-up is not required")
	}
	if t.FollowUp.Date != nil && t.EndDate != nil && t.FollowUp.Date.Before(*t.EndDate) {
		return invalid("follow_up.date", "must not precede end date")
	}
	for _, m := range t.Medications {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	if !t.Status.valid() {
		return invalid("status", "required")
	}
	return nil
}

// Apply avanza el ciclo de vida con el mismo esquema candidato-validar.
func (t Treatment) Apply(action Action) (Treatment, StatusChange, error) {
	to, err := t.Status.Next(action)
	if err != nil {
		return t, StatusChange{}, err
	}

	cand := t
	cand.Status = to
	if err := cand.Validate(); err != nil {
		return t, StatusChange{}, err
	}
	return cand, StatusChange{Previous: string(t.Status), New: string(to)}, nil
}

// CanCorrect: cualquier campo de un tratamiento es corregible.
func (t Treatment) CanCorrect(prev Detail) (bool, error) {
	if _, ok := prev.(Treatment); !ok {
		return false, &CorrectionError{Reason: "variant mismatch"}
	}
	return true, nil
}
