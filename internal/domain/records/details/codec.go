package details

import (
	"encoding/json"
	"fmt"
)

// El detalle viaja y se persiste como un sobre {type, data}, de modo que la
// variante concreta se reconstruye sin casts por fuera de este paquete.
type envelope struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

func Marshal(d Detail) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Type: d.Type(), Data: data})
}

func Unmarshal(b []byte) (Detail, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	return Decode(env.Type, env.Data)
}

// Decode deserializa data como la variante indicada por t.
func Decode(t Type, data []byte) (Detail, error) {
	switch t {
	case TypeConsultation:
		var d Consultation
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeDiagnosis:
		var d Diagnosis
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeSurgery:
		var d Surgery
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeHospitalization:
		var d Hospitalization
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeTreatment:
		var d Treatment
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeWeight:
		var d Weight
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown detail type %q", t)
	}
}
