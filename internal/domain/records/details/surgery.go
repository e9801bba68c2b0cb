package details

import "time"

type SurgeryKind string

const (
	SurgeryKindSoftTissue SurgeryKind = "SOFT_TISSUE"
	SurgeryKindOrthopedic SurgeryKind = "ORTHOPEDIC"
	SurgeryKindDental     SurgeryKind = "DENTAL"
	SurgeryKindEmergency  SurgeryKind = "EMERGENCY"
)

func (k SurgeryKind) valid() bool {
	switch k {
	case SurgeryKindSoftTissue, SurgeryKindOrthopedic, SurgeryKindDental, SurgeryKindEmergency:
		return true
	}
	return false
}

type Anesthesia string

const (
	AnesthesiaGeneral  Anesthesia = "GENERAL"
	AnesthesiaLocal    Anesthesia = "LOCAL"
	AnesthesiaSedation Anesthesia = "SEDATION"
)

type SurgeryOutcome string

const (
	OutcomeSuccess       SurgeryOutcome = "SUCCESS"
	OutcomeComplications SurgeryOutcome = "COMPLICATIONS"
	OutcomeFatal         SurgeryOutcome = "FATAL"
)

// Surgery es la variante quirúrgica, con ciclo de vida completo:
// SCHEDULED -> ADMITTED -> IN_PROGRESS -> COMPLETED | DECEASED,
// con cancelación posible hasta ADMITTED.
type Surgery struct {
	Name                    string         `json:"name"`
	Kind                    SurgeryKind    `json:"kind"`
	Procedures              []Procedure    `json:"procedures"`
	Anesthesia              Anesthesia     `json:"anesthesia,omitempty"`
	HospitalizationRequired bool           `json:"hospitalization_required"`
	SurgeryDate             time.Time      `json:"surgery_date"`
	Status                  SurgeryStatus  `json:"status"`
	Outcome                 SurgeryOutcome `json:"outcome,omitempty"`
	PostOpMedications       MedicationList `json:"post_op_medications"`
	CompletedAt             *time.Time     `json:"completed_at,omitempty"`
}

func (Surgery) Type() Type { return TypeSurgery }
func (Surgery) isDetail()  {}

func (s Surgery) Validate() error {
	if blank(s.Name) {
		return invalid("name", "required")
	}
	if !s.Kind.valid() {
		return invalid("kind", "required")
	}
	if len(s.Procedures) == 0 {
		return invalid("procedures", "at least one procedure required")
	}
	for _, p := range s.Procedures {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	if err := s.PostOpMedications.Validate(); err != nil {
		return err
	}
	if !s.Status.valid() {
		return invalid("status", "required")
	}

	// Reglas dependientes del estado.
	switch s.Status {
	case SurgeryScheduled:
		if s.SurgeryDate.IsZero() {
			return invalid("surgery_date", "required")
		}
		if s.SurgeryDate.Before(time.Now()) {
			return invalid("surgery_date", "must not be in the past")
		}
		if s.PostOpMedications.Len() > 0 {
			return invalid("post_op_medications", "not allowed before surgery starts")
		}
		if s.Outcome != "" {
			return invalid("outcome", "not allowed before completion")
		}
	case SurgeryAdmitted:
		if s.SurgeryDate.IsZero() {
			return invalid("surgery_date", "required")
		}
		if s.Outcome != "" {
			return invalid("outcome", "not allowed before completion")
		}
	case SurgeryInProgress:
		if s.SurgeryDate.IsZero() {
			return invalid("surgery_date", "required")
		}
		if s.Anesthesia == "" {
			return invalid("anesthesia", "required while in progress")
		}
	case SurgeryCompleted, SurgeryDeceased:
		if s.Outcome == "" {
			return invalid("outcome", "required after completion")
		}
		if s.Status == SurgeryCompleted && s.PostOpMedications.Len() == 0 {
			return invalid("post_op_medications", "at least one required on completion")
		}
		if s.CompletedAt == nil {
			return invalid("completed_at", "required after completion")
		}
		if s.CompletedAt.Before(s.SurgeryDate) {
			return invalid("completed_at", "must not precede surgery date")
		}
	case SurgeryCancelled:
		if s.Outcome != "" {
			return invalid("outcome", "not allowed on a cancelled surgery")
		}
		if s.CompletedAt != nil && s.CompletedAt.Before(s.SurgeryDate) {
			return invalid("completed_at", "must not precede surgery date")
		}
	}
	return nil
}

// Apply avanza el ciclo de vida. Arma el candidato completo, lo valida y
// recién entonces lo devuelve: el receptor nunca queda a medio mutar.
func (s Surgery) Apply(action Action, now time.Time) (Surgery, StatusChange, error) {
	to, err := s.Status.Next(action)
	if err != nil {
		return s, StatusChange{}, err
	}

	cand := s
	cand.Status = to

	if to == SurgeryCompleted || to == SurgeryDeceased {
		if s.Outcome == "" {
			return s, StatusChange{}, invalid("outcome", "cannot complete without outcome")
		}
		if s.PostOpMedications.Len() == 0 {
			return s, StatusChange{}, invalid("post_op_medications", "cannot complete without post-op medication")
		}
		t := now
		cand.CompletedAt = &t
	}

	if err := cand.Validate(); err != nil {
		return s, StatusChange{}, err
	}
	return cand, StatusChange{Previous: string(s.Status), New: string(to)}, nil
}

// WithOutcome fija el resultado; solo es legal con la cirugía en curso.
func (s Surgery) WithOutcome(outcome SurgeryOutcome) (Surgery, error) {
	if s.Status != SurgeryInProgress {
		return s, invalid("outcome", "can only change outcome while in progress")
	}
	if outcome == "" {
		return s, invalid("outcome", "required")
	}
	cand := s
	cand.Outcome = outcome
	if err := cand.Validate(); err != nil {
		return s, err
	}
	return cand, nil
}

// AddPostOpMedication agrega una medicación post-operatoria; solo en curso.
func (s Surgery) AddPostOpMedication(m SurgeryMedication) (Surgery, error) {
	if s.Status != SurgeryInProgress {
		return s, invalid("post_op_medications", "can only add medication while in progress")
	}
	if err := m.Validate(); err != nil {
		return s, err
	}
	cand := s
	cand.PostOpMedications = s.PostOpMedications.Add(m)
	if err := cand.Validate(); err != nil {
		return s, err
	}
	return cand, nil
}

// Reschedule mueve la fecha; solo mientras siga agendada.
func (s Surgery) Reschedule(newDate, now time.Time) (Surgery, error) {
	if s.Status != SurgeryScheduled {
		return s, invalid("surgery_date", "can only reschedule while scheduled")
	}
	if newDate.Before(now) {
		return s, invalid("surgery_date", "must not be in the past")
	}
	cand := s
	cand.SurgeryDate = newDate
	if err := cand.Validate(); err != nil {
		return s, err
	}
	return cand, nil
}

// CanCorrect: una cirugía cerrada no admite correcciones (error duro). Sobre
// una abierta, solo pueden diferir la fecha (únicamente si seguía SCHEDULED)
// y las medicaciones post-operatorias (solo agregando); todo lo demás debe
// coincidir exactamente con el registro original.
func (s Surgery) CanCorrect(prev Detail) (bool, error) {
	p, ok := prev.(Surgery)
	if !ok {
		return false, nil
	}
	if p.Status.Terminal() {
		return false, &CorrectionError{Reason: "surgery already " + string(p.Status)}
	}
	if !s.PostOpMedications.ContainsAll(p.PostOpMedications) {
		return false, nil
	}
	if !s.SurgeryDate.Equal(p.SurgeryDate) && p.Status != SurgeryScheduled {
		return false, nil
	}
	if s.Name != p.Name ||
		s.Kind != p.Kind ||
		s.Anesthesia != p.Anesthesia ||
		s.HospitalizationRequired != p.HospitalizationRequired ||
		s.Status != p.Status ||
		s.Outcome != p.Outcome ||
		!proceduresEqual(s.Procedures, p.Procedures) ||
		!timesEqual(s.CompletedAt, p.CompletedAt) {
		return false, nil
	}
	return true, nil
}

func proceduresEqual(a, b []Procedure) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
