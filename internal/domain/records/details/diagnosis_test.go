package details

import (
	"errors"
	"testing"
	"time"
)

func validDiagnosis(t *testing.T) Diagnosis {
	t.Helper()
	return Diagnosis{
		Name:        "Otitis externa",
		Category:    "DERMATOLOGY",
		Severity:    SeverityModerate,
		DiagnosedAt: time.Now().Add(-time.Hour),
		Symptoms:    []string{"sacudidas de cabeza", "mal olor"},
	}
}

func TestDiagnosis_Validate(t *testing.T) {
	d := validDiagnosis(t)
	if err := d.Validate(); err != nil {
		t.Fatalf("valid diagnosis rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Diagnosis)
		field  string
	}{
		{"blank name", func(d *Diagnosis) { d.Name = "" }, "name"},
		{"blank category", func(d *Diagnosis) { d.Category = " " }, "category"},
		{"unknown severity", func(d *Diagnosis) { d.Severity = "FATAL" }, "severity"},
		{"missing date", func(d *Diagnosis) { d.DiagnosedAt = time.Time{} }, "diagnosed_at"},
		{"future date", func(d *Diagnosis) { d.DiagnosedAt = time.Now().Add(time.Hour) }, "diagnosed_at"},
		{
			"follow-up required without date",
			func(d *Diagnosis) { d.FollowUp = FollowUp{Required: true} },
			"follow_up.date",
		},
		{
			"follow-up date without required",
			func(d *Diagnosis) {
				date := time.Now().Add(24 * time.Hour)
				d.FollowUp = FollowUp{Required: false, Date: &date}
			},
			"follow_up.date",
		},
		{
			"follow-up before diagnosis",
			func(d *Diagnosis) {
				date := d.DiagnosedAt.Add(-24 * time.Hour)
				d.FollowUp = FollowUp{Required: true, Date: &date}
			},
			"follow_up.date",
		},
		{"blank symptom entry", func(d *Diagnosis) { d.Symptoms = []string{"fiebre", " "} }, "symptoms"},
		{
			"blank recommendation entry",
			func(d *Diagnosis) { d.Recommendations = []string{""} },
			"recommendations",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := validDiagnosis(t)
			c.mutate(&d)

			var vErr *ValidationError
			if err := d.Validate(); !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			} else if vErr.Field != c.field {
				t.Fatalf("got field %q, want %q", vErr.Field, c.field)
			}
		})
	}
}

func TestDiagnosis_Validate_FollowUpPair(t *testing.T) {
	d := validDiagnosis(t)
	date := d.DiagnosedAt.Add(7 * 24 * time.Hour)
	d.FollowUp = FollowUp{Required: true, Date: &date}
	if err := d.Validate(); err != nil {
		t.Fatalf("follow-up pair rejected: %v", err)
	}
}

func TestDiagnosis_CanCorrect(t *testing.T) {
	prev := validDiagnosis(t)

	next := prev
	next.Severity = SeveritySevere
	next.Chronic = true
	if ok, err := next.CanCorrect(prev); err != nil || !ok {
		t.Fatalf("got %v/%v, want true", ok, err)
	}

	var cErr *CorrectionError
	if ok, err := next.CanCorrect(Weight{Value: 3, Unit: "kg"}); !errors.As(err, &cErr) || ok {
		t.Fatalf("variant mismatch: got %v/%v, want CorrectionError", ok, err)
	}
}
