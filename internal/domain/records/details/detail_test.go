package details

import (
	"errors"
	"testing"
	"time"
)

func TestParseType(t *testing.T) {
	if got, ok := ParseType(" surgery "); !ok || got != TypeSurgery {
		t.Fatalf("got %q/%v", got, ok)
	}
	if _, ok := ParseType("XRAY"); ok {
		t.Fatal("unknown type should not parse")
	}
}

func TestParseAction(t *testing.T) {
	if got, ok := ParseAction("declare_deceased"); !ok || got != ActionDeclareDeceased {
		t.Fatalf("got %q/%v", got, ok)
	}
	if _, ok := ParseAction("PAUSE"); ok {
		t.Fatal("unknown action should not parse")
	}
}

func TestConsultation_Validate(t *testing.T) {
	c := Consultation{
		Reason:   "Control anual",
		Symptoms: []string{"letargo"},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid consultation rejected: %v", err)
	}

	c.Reason = "  "
	var vErr *ValidationError
	if err := c.Validate(); !errors.As(err, &vErr) || vErr.Field != "reason" {
		t.Fatalf("blank reason: got %v", err)
	}

	c = Consultation{Reason: "Control", Symptoms: []string{" "}}
	if err := c.Validate(); !errors.As(err, &vErr) || vErr.Field != "symptoms" {
		t.Fatalf("blank symptom: got %v", err)
	}

	c = Consultation{Reason: "Control", FollowUp: FollowUp{Required: true}}
	if err := c.Validate(); !errors.As(err, &vErr) || vErr.Field != "follow_up.date" {
		t.Fatalf("missing follow-up date: got %v", err)
	}

	past := time.Now().Add(-24 * time.Hour)
	c.FollowUp.Date = &past
	if err := c.Validate(); !errors.As(err, &vErr) || vErr.Field != "follow_up.date" {
		t.Fatalf("past follow-up date: got %v", err)
	}

	future := time.Now().Add(24 * time.Hour)
	c.FollowUp.Date = &future
	if err := c.Validate(); err != nil {
		t.Fatalf("future follow-up rejected: %v", err)
	}
}

func TestWeight_Validate(t *testing.T) {
	w := Weight{Value: 4.2, Unit: "kg"}
	if err := w.Validate(); err != nil {
		t.Fatalf("valid weight rejected: %v", err)
	}

	var vErr *ValidationError
	if err := (Weight{Value: 0, Unit: "kg"}).Validate(); !errors.As(err, &vErr) || vErr.Field != "value" {
		t.Fatalf("zero value: got %v", err)
	}
	if err := (Weight{Value: 4.2}).Validate(); !errors.As(err, &vErr) || vErr.Field != "unit" {
		t.Fatalf("missing unit: got %v", err)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	date := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	in := Surgery{
		Name:        "Castración",
		Kind:        SurgeryKindSoftTissue,
		Procedures:  []Procedure{{Name: "Orquiectomía", DurationMinutes: 45}},
		Anesthesia:  AnesthesiaGeneral,
		SurgeryDate: date,
		Status:      SurgeryScheduled,
	}

	b, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, ok := out.(Surgery)
	if !ok {
		t.Fatalf("decoded wrong variant %T", out)
	}
	if got.Name != in.Name || got.Kind != in.Kind || !got.SurgeryDate.Equal(date) || got.Status != in.Status {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.PostOpMedications.Len() != 0 {
		t.Fatalf("expected empty medication list, got %d", got.PostOpMedications.Len())
	}
}

func TestCodec_UnknownType(t *testing.T) {
	if _, err := Decode("XRAY", []byte(`{}`)); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
