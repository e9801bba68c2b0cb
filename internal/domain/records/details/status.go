package details

// Cada máquina de estados es una tabla de transición cerrada. Cualquier par
// (estado, acción) fuera de su tabla falla con InvalidTransitionError, y un
// estado sin salidas en la tabla es terminal.

type SurgeryStatus string

const (
	SurgeryScheduled  SurgeryStatus = "SCHEDULED"
	SurgeryAdmitted   SurgeryStatus = "ADMITTED"
	SurgeryInProgress SurgeryStatus = "IN_PROGRESS"
	SurgeryCompleted  SurgeryStatus = "COMPLETED"
	SurgeryCancelled  SurgeryStatus = "CANCELLED"
	SurgeryDeceased   SurgeryStatus = "DECEASED"
)

var surgeryTransitions = map[SurgeryStatus]map[Action]SurgeryStatus{
	SurgeryScheduled: {
		ActionAdmit:  SurgeryAdmitted,
		ActionCancel: SurgeryCancelled,
	},
	SurgeryAdmitted: {
		ActionStart:  SurgeryInProgress,
		ActionCancel: SurgeryCancelled,
	},
	SurgeryInProgress: {
		ActionComplete:        SurgeryCompleted,
		ActionDeclareDeceased: SurgeryDeceased,
	},
}

func (s SurgeryStatus) Next(a Action) (SurgeryStatus, error) {
	return next(surgeryTransitions, s, a)
}

// Terminal indica que ninguna acción es aceptada desde s.
func (s SurgeryStatus) Terminal() bool { return len(surgeryTransitions[s]) == 0 }

func (s SurgeryStatus) valid() bool {
	switch s {
	case SurgeryScheduled, SurgeryAdmitted, SurgeryInProgress,
		SurgeryCompleted, SurgeryCancelled, SurgeryDeceased:
		return true
	}
	return false
}

type HospitalizationStatus string

const (
	HospitalizationScheduled  HospitalizationStatus = "SCHEDULED"
	HospitalizationAdmitted   HospitalizationStatus = "ADMITTED"
	HospitalizationInProgress HospitalizationStatus = "IN_PROGRESS"
	HospitalizationCompleted  HospitalizationStatus = "COMPLETED"
	HospitalizationCancelled  HospitalizationStatus = "CANCELLED"
	HospitalizationDeceased   HospitalizationStatus = "DECEASED"
)

var hospitalizationTransitions = map[HospitalizationStatus]map[Action]HospitalizationStatus{
	HospitalizationScheduled: {
		ActionAdmit:  HospitalizationAdmitted,
		ActionCancel: HospitalizationCancelled,
	},
	HospitalizationAdmitted: {
		ActionStart: HospitalizationInProgress,
	},
	HospitalizationInProgress: {
		ActionComplete:        HospitalizationCompleted,
		ActionDeclareDeceased: HospitalizationDeceased,
	},
}

func (s HospitalizationStatus) Next(a Action) (HospitalizationStatus, error) {
	return next(hospitalizationTransitions, s, a)
}

func (s HospitalizationStatus) Terminal() bool {
	return len(hospitalizationTransitions[s]) == 0
}

func (s HospitalizationStatus) valid() bool {
	switch s {
	case HospitalizationScheduled, HospitalizationAdmitted, HospitalizationInProgress,
		HospitalizationCompleted, HospitalizationCancelled, HospitalizationDeceased:
		return true
	}
	return false
}

type TreatmentStatus string

const (
	TreatmentPlanned   TreatmentStatus = "PLANNED"
	TreatmentActive    TreatmentStatus = "ACTIVE"
	TreatmentSuspended TreatmentStatus = "SUSPENDED"
	TreatmentFinished  TreatmentStatus = "FINISHED"
)

var treatmentTransitions = map[TreatmentStatus]map[Action]TreatmentStatus{
	TreatmentPlanned: {
		ActionActivate: TreatmentActive,
	},
	TreatmentActive: {
		ActionSuspend: TreatmentSuspended,
		ActionFinish:  TreatmentFinished,
	},
	TreatmentSuspended: {
		ActionActivate: TreatmentActive,
	},
}

func (s TreatmentStatus) Next(a Action) (TreatmentStatus, error) {
	return next(treatmentTransitions, s, a)
}

func (s TreatmentStatus) Terminal() bool { return len(treatmentTransitions[s]) == 0 }

func (s TreatmentStatus) valid() bool {
	switch s {
	case TreatmentPlanned, TreatmentActive, TreatmentSuspended, TreatmentFinished:
		return true
	}
	return false
}

// StatusChange describe una transición aplicada con éxito.
type StatusChange struct {
	Previous string
	New      string
}

func next[S ~string](table map[S]map[Action]S, current S, action Action) (S, error) {
	if to, ok := table[current][action]; ok {
		return to, nil
	}
	return current, &InvalidTransitionError{Status: string(current), Action: action}
}
