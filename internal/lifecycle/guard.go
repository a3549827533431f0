// Package lifecycle predicts which reservation transitions are meaningful before they are
// requested from the rental API. The API remains the authority; a stale local status can make
// the guard permit or deny an action the API would treat differently.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"locadora-admin/internal/domain"
)

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
)

func ParseAction(value string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(value)))
	switch a {
	case ActionConfirm, ActionCancel, ActionEdit, ActionDelete:
		return a, nil
	}
	return "", &UnknownActionError{Action: Action(value)}
}

var (
	ErrTerminalState = errors.New("reservation is in a terminal state")
	ErrUnknownStatus = errors.New("unknown reservation status")
	ErrUnknownAction = errors.New("unknown lifecycle action")
)

type TerminalStateError struct {
	Status domain.ReservationStatus
	Action Action
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("cannot %s a reservation in terminal status %s", e.Action, e.Status)
}

func (e *TerminalStateError) Unwrap() error { return ErrTerminalState }

type UnknownStatusError struct {
	Status domain.ReservationStatus
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown reservation status %q", string(e.Status))
}

func (e *UnknownStatusError) Unwrap() error { return ErrUnknownStatus }

type UnknownActionError struct {
	Action Action
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown lifecycle action %q", string(e.Action))
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

// transitions holds the outgoing edges of every non-terminal status.
var transitions = map[domain.ReservationStatus]map[Action]domain.ReservationStatus{
	domain.ReservationStatusPendingPayment: {
		ActionConfirm: domain.ReservationStatusConfirmed,
		ActionCancel:  domain.ReservationStatusCanceled,
	},
	domain.ReservationStatusConfirmed: {
		ActionConfirm: domain.ReservationStatusConfirmed,
		ActionCancel:  domain.ReservationStatusCanceled,
	},
	domain.ReservationStatusInProgress: {
		ActionConfirm: domain.ReservationStatusInProgress,
		ActionCancel:  domain.ReservationStatusCanceled,
	},
}

// IsTerminal reports whether no lifecycle action is defined from status.
func IsTerminal(status domain.ReservationStatus) bool {
	return status == domain.ReservationStatusFinished || status == domain.ReservationStatusCanceled
}

// NextStatus returns the status a reservation would move to if action were applied to it.
func NextStatus(current domain.ReservationStatus, action Action) (domain.ReservationStatus, error) {
	if action != ActionConfirm && action != ActionCancel {
		return "", &UnknownActionError{Action: action}
	}
	if !current.IsValid() {
		return "", &UnknownStatusError{Status: current}
	}
	if IsTerminal(current) {
		return "", &TerminalStateError{Status: current, Action: action}
	}
	return transitions[current][action], nil
}

// IsNoop reports whether applying action leaves the status unchanged.
func IsNoop(current domain.ReservationStatus, action Action) bool {
	next, err := NextStatus(current, action)
	return err == nil && next == current
}

// Available lists the actions worth offering for a reservation in status.
// Confirm is offered while payment is pending and to re-assert a rental already under way;
// edit and delete are always offered and left to the rental API to accept or refuse.
func Available(status domain.ReservationStatus) []Action {
	var actions []Action
	switch status {
	case domain.ReservationStatusPendingPayment, domain.ReservationStatusInProgress:
		actions = append(actions, ActionConfirm)
	}
	if status.IsValid() && !IsTerminal(status) {
		actions = append(actions, ActionCancel)
	}
	return append(actions, ActionEdit, ActionDelete)
}

// Allows reports whether action is among the Available actions for status.
func Allows(status domain.ReservationStatus, action Action) bool {
	for _, a := range Available(status) {
		if a == action {
			return true
		}
	}
	return false
}
