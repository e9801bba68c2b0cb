package details

import "strings"

// Action es un comando de ciclo de vida compartido por las máquinas de estado.
type Action string

const (
	ActionAdmit           Action = "ADMIT"
	ActionStart           Action = "START"
	ActionComplete        Action = "COMPLETE"
	ActionCancel          Action = "CANCEL"
	ActionDeclareDeceased Action = "DECLARE_DECEASED"
	ActionActivate        Action = "ACTIVATE"
	ActionSuspend         Action = "SUSPEND"
	ActionFinish          Action = "FINISH"
)

func ParseAction(s string) (Action, bool) {
	a := Action(strings.ToUpper(strings.TrimSpace(s)))
	switch a {
	case ActionAdmit, ActionStart, ActionComplete, ActionCancel,
		ActionDeclareDeceased, ActionActivate, ActionSuspend, ActionFinish:
		return a, true
	}
	return "", false
}
