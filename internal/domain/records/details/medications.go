package details

import "encoding/json"

// Procedure es un procedimiento individual dentro de una cirugía.
type Procedure struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (p Procedure) Validate() error {
	if blank(p.Name) {
		return invalid("procedure.name", "required")
	}
	if p.DurationMinutes <= 0 {
		return invalid("procedure.duration_minutes", "must be positive")
	}
	return nil
}

// SurgeryMedication es una medicación post-operatoria.
type SurgeryMedication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Days      int    `json:"days"`
}

func (m SurgeryMedication) Validate() error {
	if blank(m.Name) {
		return invalid("medication.name", "required")
	}
	if blank(m.Dosage) {
		return invalid("medication.dosage", "required")
	}
	if m.Days <= 0 {
		return invalid("medication.days", "must be positive")
	}
	return nil
}

// TreatmentMedication es una medicación dentro de un tratamiento.
type TreatmentMedication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Days      int    `json:"days"`
}

func (m TreatmentMedication) Validate() error {
	if blank(m.Name) {
		return invalid("medication.name", "required")
	}
	if blank(m.Dosage) {
		return invalid("medication.dosage", "required")
	}
	if m.Days <= 0 {
		return invalid("medication.days", "must be positive")
	}
	return nil
}

// MedicationList es la lista post-operatoria de una cirugía: solo crece.
// No expone ninguna forma de quitar ni reemplazar entradas.
type MedicationList struct {
	items []SurgeryMedication
}

func NewMedicationList(items ...SurgeryMedication) MedicationList {
	return MedicationList{items: append([]SurgeryMedication(nil), items...)}
}

// Add devuelve una lista nueva con m al final; el receptor queda intacto.
func (l MedicationList) Add(m SurgeryMedication) MedicationList {
	items := make([]SurgeryMedication, 0, len(l.items)+1)
	items = append(items, l.items...)
	items = append(items, m)
	return MedicationList{items: items}
}

func (l MedicationList) Len() int { return len(l.items) }

func (l MedicationList) Items() []SurgeryMedication {
	return append([]SurgeryMedication(nil), l.items...)
}

// ContainsAll indica si l es superconjunto de prev.
func (l MedicationList) ContainsAll(prev MedicationList) bool {
	for _, want := range prev.items {
		found := false
		for _, got := range l.items {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (l MedicationList) Validate() error {
	for _, m := range l.items {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (l MedicationList) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

func (l *MedicationList) UnmarshalJSON(b []byte) error {
	var items []SurgeryMedication
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	l.items = items
	return nil
}
