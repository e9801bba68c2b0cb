package details

import (
	"errors"
	"testing"
	"time"
)

func plannedTreatment(t *testing.T) Treatment {
	t.Helper()
	return Treatment{
		Name:         "Antibióticos orales",
		StartDate:    time.Now().Add(-time.Hour),
		Instructions: "Administrar con comida",
		Medications: []TreatmentMedication{
			{Name: "Amoxicilina", Dosage: "250mg", Frequency: "12h", Days: 10},
		},
		Status: TreatmentPlanned,
	}
}

func TestTreatment_Validate(t *testing.T) {
	tr := plannedTreatment(t)
	if err := tr.Validate(); err != nil {
		t.Fatalf("valid treatment rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Treatment)
		field  string
	}{
		{"blank name", func(tr *Treatment) { tr.Name = "" }, "name"},
		{"missing start", func(tr *Treatment) { tr.StartDate = time.Time{} }, "start_date"},
		{"future start", func(tr *Treatment) { tr.StartDate = time.Now().Add(time.Hour) }, "start_date"},
		{"blank instructions", func(tr *Treatment) { tr.Instructions = "  " }, "instructions"},
		{
			"end before start",
			func(tr *Treatment) {
				end := tr.StartDate.Add(-24 * time.Hour)
				tr.EndDate = &end
			},
			"end_date",
		},
		{
			"follow-up before end",
			func(tr *Treatment) {
				end := tr.StartDate.Add(10 * 24 * time.Hour)
				fu := end.Add(-24 * time.Hour)
				tr.EndDate = &end
				tr.FollowUp = FollowUp{Required: true, Date: &fu}
			},
			"follow_up.date",
		},
		{
			"invalid medication",
			func(tr *Treatment) {
				tr.Medications = []TreatmentMedication{{Name: "Amoxicilina", Dosage: "250mg", Days: 0}}
			},
			"medication.days",
		},
		{"bad status", func(tr *Treatment) { tr.Status = "PAUSED" }, "status"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := plannedTreatment(t)
			c.mutate(&tr)

			var vErr *ValidationError
			if err := tr.Validate(); !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			} else if vErr.Field != c.field {
				t.Fatalf("got field %q, want %q", vErr.Field, c.field)
			}
		})
	}
}

func TestTreatment_Lifecycle(t *testing.T) {
	tr := plannedTreatment(t)

	// Terminar un tratamiento que nunca se activó no está permitido.
	var tErr *InvalidTransitionError
	if _, _, err := tr.Apply(ActionFinish); !errors.As(err, &tErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if tErr.Status != "PLANNED" || tErr.Action != ActionFinish {
		t.Fatalf("error carries %q/%q", tErr.Status, tErr.Action)
	}

	tr, ch, err := tr.Apply(ActionActivate)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if tr.Status != TreatmentActive || ch.New != "ACTIVE" {
		t.Fatalf("got %s / %+v", tr.Status, ch)
	}

	tr, _, err = tr.Apply(ActionSuspend)
	if err != nil {
		t.Fatalf("suspend: %v", err)
	}
	tr, _, err = tr.Apply(ActionActivate)
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	tr, _, err = tr.Apply(ActionFinish)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !tr.Status.Terminal() {
		t.Fatalf("finished treatment should be terminal, got %s", tr.Status)
	}
}

func TestTreatment_CanCorrect(t *testing.T) {
	prev := plannedTreatment(t)

	next := prev
	next.Instructions = "Administrar en ayunas"
	if ok, err := next.CanCorrect(prev); err != nil || !ok {
		t.Fatalf("got %v/%v, want true", ok, err)
	}

	var cErr *CorrectionError
	if ok, err := next.CanCorrect(Weight{Value: 3, Unit: "kg"}); !errors.As(err, &cErr) || ok {
		t.Fatalf("variant mismatch: got %v/%v, want CorrectionError", ok, err)
	}
}
