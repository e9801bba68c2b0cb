package details

import (
	"strings"
	"time"
)

// Type identifica la variante clínica de un registro médico.
type Type string

const (
	TypeConsultation    Type = "CONSULTATION"
	TypeDiagnosis       Type = "DIAGNOSIS"
	TypeSurgery         Type = "SURGERY"
	TypeHospitalization Type = "HOSPITALIZATION"
	TypeTreatment       Type = "TREATMENT"
	TypeWeight          Type = "WEIGHT"
)

func ParseType(s string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypeConsultation, TypeDiagnosis, TypeSurgery,
		TypeHospitalization, TypeTreatment, TypeWeight:
		return t, true
	}
	return "", false
}

// Detail es la capacidad que implementa cada variante de registro médico.
// El conjunto de implementaciones es cerrado: Consultation, Diagnosis,
// Surgery, Hospitalization, Treatment y Weight.
type Detail interface {
	Type() Type

	// Validate revisa todas las reglas de negocio de la variante. No muta.
	Validate() error

	// CanCorrect indica si el receptor puede reemplazar a prev como
	// corrección. Una variante distinta nunca es un cast en runtime: es
	// false o CorrectionError según la variante.
	CanCorrect(prev Detail) (bool, error)

	isDetail()
}

// FollowUp indica si el caso requiere un control posterior y cuándo.
type FollowUp struct {
	Required bool       `json:"required"`
	Date     *time.Time `json:"date,omitempty"`
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func timesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
