package details

import "time"

// Consultation registra una visita clínica; no tiene ciclo de vida propio.
type Consultation struct {
	Reason        string   `json:"reason"`
	Symptoms      []string `json:"symptoms,omitempty"`
	Findings      string   `json:"findings,omitempty"`
	Diagnosis     string   `json:"diagnosis,omitempty"`
	TreatmentPlan string   `json:"treatment_plan,omitempty"`
	FollowUp      FollowUp `json:"follow_up"`
}

func (Consultation) Type() Type { return TypeConsultation }
func (Consultation) isDetail()  {}

func (c Consultation) Validate() error {
	if blank(c.Reason) {
		return invalid("reason", "required")
	}
	for _, s := range c.Symptoms {
		if blank(s) {
			return invalid("symptoms", "entries must not be blank")
		}
	}
	if c.FollowUp.Required {
		if c.FollowUp.Date == nil {
			return invalid("follow_up.date", "required when follow-up is required")
		}
		if c.FollowUp.Date.Before(time.Now()) {
			return invalid("follow_up.date", "must not be in the past")
		}
	}
	return nil
}

// CanCorrect: cualquier campo de una consulta es corregible.
func (c Consultation) CanCorrect(prev Detail) (bool, error) {
	if _, ok := prev.(Consultation); !ok {
		return false, &CorrectionError{Reason: "variant mismatch"}
	}
	return true, nil
}
