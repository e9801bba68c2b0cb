package details

import "time"

type Severity string

const (
	SeverityMild     Severity = "MILD"
	SeverityModerate Severity = "MODERATE"
	SeveritySevere   Severity = "SEVERE"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	}
	return false
}

// Diagnosis registra un diagnóstico; no tiene ciclo de vida propio.
type Diagnosis struct {
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Severity        Severity  `json:"severity"`
	DiagnosedAt     time.Time `json:"diagnosed_at"`
	Chronic         bool      `json:"chronic"`
	Contagious      bool      `json:"contagious"`
	Symptoms        []string  `json:"symptoms,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
	FollowUp        FollowUp  `json:"follow_up"`
}

func (Diagnosis) Type() Type { return TypeDiagnosis }
func (Diagnosis) isDetail()  {}

func (d Diagnosis) Validate() error {
	if blank(d.Name) {
		return invalid("name", "required")
	}
	if blank(d.Category) {
		return invalid("category", "required")
	}
	if !d.Severity.valid() {
		return invalid("severity", "required")
	}
	if d.DiagnosedAt.IsZero() {
		return invalid("diagnosed_at", "required")
	}
	if d.DiagnosedAt.After(time.Now()) {
		return invalid("diagnosed_at", "must not be in the future")
	}
	// Required y Date van juntos: ambos presentes o ambos ausentes.
	if d.FollowUp.Required && d.FollowUp.Date == nil {
		return invalid("follow_up.date", "required when follow-up is required")
	}
	if !d.FollowUp.Required && d.FollowUp.Date != nil {
		return invalid("follow_up.date", "not allowed when follow-up is not required")
	}
	if d.FollowUp.Date != nil && d.FollowUp.Date.Before(d.DiagnosedAt) {
		return invalid("follow_up.date", "must not precede diagnosis date")
	}
	for _, s := range d.Symptoms {
		if blank(s) {
			return invalid("symptoms", "entries must not be blank")
		}
	}
	for _, r := range d.Recommendations {
		if blank(r) {
			return invalid("recommendations", "entries must not be blank")
		}
	}
	return nil
}

// CanCorrect: cualquier campo de un diagnóstico es corregible, sin
// restricción de estado.
func (d Diagnosis) CanCorrect(prev Detail) (bool, error) {
	if _, ok := prev.(Diagnosis); !ok {
		return false, &CorrectionError{Reason: "variant mismatch"}
	}
	return true, nil
}
