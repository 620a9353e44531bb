package control

import (
	"errors"
	"fmt"
)

// Offsets of the entries that follow the plans in the menu.
const (
	separatorOffset = 0
	reloadOffset    = 1
	editOffset      = 2
	quitOffset      = 3
)

// Action is what a menu click asks for.
type Action int

const (
	ActionSelectPlan Action = iota
	ActionReload
	ActionEdit
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionSelectPlan:
		return "select-plan"
	case ActionReload:
		return "reload"
	case ActionEdit:
		return "edit"
	case ActionQuit:
		return "quit"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Protocol errors: the index of a click does not fit the menu that was built.
var (
	ErrSeparatorActivated = errors.New("separator activated")
	ErrUnknownAction      = errors.New("unknown menu item")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrLayoutMismatch     = errors.New("tray layout out of sync")
)

// ProtocolError reports a menu index that cannot be mapped to an action.
type ProtocolError struct {
	Index int
	Err   error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("menu item #%d: %v", e.Index, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Decode maps the index of a clicked entry to an action. Indices below
// numberOfPlans select the plan at that position; the rest are offsets past
// the plans: the separator, then reload, edit and quit.
func Decode(numberOfPlans, index int) (Action, error) {
	if index < 0 {
		return 0, &ProtocolError{Index: index, Err: ErrUnknownAction}
	}
	if index < numberOfPlans {
		return ActionSelectPlan, nil
	}

	offset := index - numberOfPlans
	switch offset {
	case separatorOffset:
		return 0, &ProtocolError{Index: index, Err: ErrSeparatorActivated}
	case reloadOffset:
		return ActionReload, nil
	case editOffset:
		return ActionEdit, nil
	case quitOffset:
		return ActionQuit, nil
	}
	return 0, &ProtocolError{Index: index, Err: fmt.Errorf("%w: offset %d", ErrUnknownAction, offset)}
}
