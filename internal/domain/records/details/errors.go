package details

import "fmt"

// ValidationError señala una regla de negocio violada por una variante.
// Field identifica el campo ofendido y Rule describe la regla.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Rule)
}

func invalid(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}

// InvalidTransitionError reporta una acción no permitida desde el estado actual.
type InvalidTransitionError struct {
	Status string
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("action %s not allowed from status %s", e.Action, e.Status)
}

// CorrectionError reporta una corrección rechazada de plano: la variante no
// coincide con la del registro original, o una cirugía ya cerrada.
type CorrectionError struct {
	Reason string
}

func (e *CorrectionError) Error() string {
	return "illegal correction: " + e.Reason
}
