package details

// Weight es una observación puntual de peso.
type Weight struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"` // "kg", "lb"
}

func (Weight) Type() Type { return TypeWeight }
func (Weight) isDetail()  {}

func (w Weight) Validate() error {
	if w.Value <= 0 {
		return invalid("value", "must be positive")
	}
	if blank(w.Unit) {
		return invalid("unit", "required")
	}
	return nil
}

func (w Weight) CanCorrect(prev Detail) (bool, error) {
	if _, ok := prev.(Weight); !ok {
		return false, &CorrectionError{Reason: "variant mismatch"}
	}
	return true, nil
}
