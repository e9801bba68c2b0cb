package details

import (
	"errors"
	"testing"
)

var allActions = []Action{
	ActionAdmit, ActionStart, ActionComplete, ActionCancel,
	ActionDeclareDeceased, ActionActivate, ActionSuspend, ActionFinish,
}

func TestSurgeryStatus_Next_DeclaredTransitions(t *testing.T) {
	cases := []struct {
		from   SurgeryStatus
		action Action
		want   SurgeryStatus
	}{
		{SurgeryScheduled, ActionAdmit, SurgeryAdmitted},
		{SurgeryScheduled, ActionCancel, SurgeryCancelled},
		{SurgeryAdmitted, ActionStart, SurgeryInProgress},
		{SurgeryAdmitted, ActionCancel, SurgeryCancelled},
		{SurgeryInProgress, ActionComplete, SurgeryCompleted},
		{SurgeryInProgress, ActionDeclareDeceased, SurgeryDeceased},
	}

	for _, c := range cases {
		got, err := c.from.Next(c.action)
		if err != nil {
			t.Fatalf("%s + %s: unexpected error %v", c.from, c.action, err)
		}
		if got != c.want {
			t.Fatalf("%s + %s: got %s want %s", c.from, c.action, got, c.want)
		}
	}
}

func TestSurgeryStatus_Next_RejectsEverythingElse(t *testing.T) {
	declared := map[SurgeryStatus]map[Action]bool{
		SurgeryScheduled:  {ActionAdmit: true, ActionCancel: true},
		SurgeryAdmitted:   {ActionStart: true, ActionCancel: true},
		SurgeryInProgress: {ActionComplete: true, ActionDeclareDeceased: true},
	}
	states := []SurgeryStatus{
		SurgeryScheduled, SurgeryAdmitted, SurgeryInProgress,
		SurgeryCompleted, SurgeryCancelled, SurgeryDeceased,
	}

	for _, from := range states {
		for _, action := range allActions {
			if declared[from][action] {
				continue
			}
			_, err := from.Next(action)

			var tErr *InvalidTransitionError
			if !errors.As(err, &tErr) {
				t.Fatalf("%s + %s: expected InvalidTransitionError, got %v", from, action, err)
			}
			if tErr.Status != string(from) || tErr.Action != action {
				t.Fatalf("%s + %s: error carries %q/%q", from, action, tErr.Status, tErr.Action)
			}
		}
	}
}

func TestSurgeryStatus_Terminal(t *testing.T) {
	for _, s := range []SurgeryStatus{SurgeryCompleted, SurgeryCancelled, SurgeryDeceased} {
		if !s.Terminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	for _, s := range []SurgeryStatus{SurgeryScheduled, SurgeryAdmitted, SurgeryInProgress} {
		if s.Terminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
}

func TestHospitalizationStatus_Next(t *testing.T) {
	cases := []struct {
		from   HospitalizationStatus
		action Action
		want   HospitalizationStatus
	}{
		{HospitalizationScheduled, ActionAdmit, HospitalizationAdmitted},
		{HospitalizationScheduled, ActionCancel, HospitalizationCancelled},
		{HospitalizationAdmitted, ActionStart, HospitalizationInProgress},
		{HospitalizationInProgress, ActionComplete, HospitalizationCompleted},
		{HospitalizationInProgress, ActionDeclareDeceased, HospitalizationDeceased},
	}
	for _, c := range cases {
		got, err := c.from.Next(c.action)
		if err != nil {
			t.Fatalf("%s + %s: unexpected error %v", c.from, c.action, err)
		}
		if got != c.want {
			t.Fatalf("%s + %s: got %s want %s", c.from, c.action, got, c.want)
		}
	}

	// A diferencia de cirugía, una internación admitida no se cancela.
	if _, err := HospitalizationAdmitted.Next(ActionCancel); err == nil {
		t.Fatal("expected error cancelling an admitted hospitalization")
	}

	declared := map[HospitalizationStatus]map[Action]bool{
		HospitalizationScheduled:  {ActionAdmit: true, ActionCancel: true},
		HospitalizationAdmitted:   {ActionStart: true},
		HospitalizationInProgress: {ActionComplete: true, ActionDeclareDeceased: true},
	}
	states := []HospitalizationStatus{
		HospitalizationScheduled, HospitalizationAdmitted, HospitalizationInProgress,
		HospitalizationCompleted, HospitalizationCancelled, HospitalizationDeceased,
	}
	for _, from := range states {
		for _, action := range allActions {
			if declared[from][action] {
				continue
			}
			var tErr *InvalidTransitionError
			if _, err := from.Next(action); !errors.As(err, &tErr) {
				t.Fatalf("%s + %s: expected InvalidTransitionError, got %v", from, action, err)
			}
		}
	}
}

func TestTreatmentStatus_Next(t *testing.T) {
	cases := []struct {
		from   TreatmentStatus
		action Action
		want   TreatmentStatus
	}{
		{TreatmentPlanned, ActionActivate, TreatmentActive},
		{TreatmentActive, ActionSuspend, TreatmentSuspended},
		{TreatmentActive, ActionFinish, TreatmentFinished},
		{TreatmentSuspended, ActionActivate, TreatmentActive},
	}
	for _, c := range cases {
		got, err := c.from.Next(c.action)
		if err != nil {
			t.Fatalf("%s + %s: unexpected error %v", c.from, c.action, err)
		}
		if got != c.want {
			t.Fatalf("%s + %s: got %s want %s", c.from, c.action, got, c.want)
		}
	}

	// FINISH directo desde PLANNED no está declarado.
	var tErr *InvalidTransitionError
	if _, err := TreatmentPlanned.Next(ActionFinish); !errors.As(err, &tErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}

	if !TreatmentFinished.Terminal() {
		t.Fatal("FINISHED should be terminal")
	}
	if TreatmentSuspended.Terminal() {
		t.Fatal("SUSPENDED should not be terminal")
	}
}
