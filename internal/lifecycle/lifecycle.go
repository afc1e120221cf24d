// Package lifecycle defines the accommodation status transitions.
//
//	draft ──publish──▶ published ──hide──▶ hidden
//	                       ▲                  │
//	                       └─────publish──────┘
//	{draft, published, hidden} ──delete──▶ deleted (terminal)
package lifecycle

import (
	"fmt"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
)

type Action string

const (
	Publish Action = "publish"
	Hide    Action = "hide"
	Delete  Action = "delete"
)

var transitions = map[Action]map[model.Status]model.Status{
	Publish: {
		model.StatusDraft:     model.StatusPublished,
		model.StatusPublished: model.StatusPublished,
		model.StatusHidden:    model.StatusPublished,
	},
	Hide: {
		model.StatusPublished: model.StatusHidden,
		model.StatusHidden:    model.StatusHidden,
	},
	Delete: {
		model.StatusDraft:     model.StatusDeleted,
		model.StatusPublished: model.StatusDeleted,
		model.StatusHidden:    model.StatusDeleted,
	},
}

func ParseAction(s string) (Action, bool) {
	a := Action(s)
	_, ok := transitions[a]
	return a, ok
}

// Next returns the status reached by applying action to from.
// Deleted is terminal: every action on it fails with a Conflict error.
func Next(from model.Status, action Action) (model.Status, error) {
	targets, ok := transitions[action]
	if !ok {
		return from, apperr.Validation(fmt.Sprintf("unknown action %q", action), nil)
	}
	if from == model.StatusDeleted {
		return from, apperr.Conflict("accommodation is deleted")
	}
	to, ok := targets[from]
	if !ok {
		return from, apperr.Conflict(fmt.Sprintf("cannot %s an accommodation in status %s", action, from))
	}
	return to, nil
}

// Authorize checks that caller may transition a listing owned by ownerID.
func Authorize(caller model.Caller, ownerID int64) error {
	if !caller.Authenticated() {
		return apperr.Unauthenticated("authentication credentials were not provided")
	}
	if !caller.IsOwner() || caller.OwnerID != ownerID {
		return apperr.PermissionDenied("only the owner can change the status of this accommodation")
	}
	return nil
}

// Message is the confirmation returned to the client after a transition.
func Message(action Action) string {
	switch action {
	case Publish:
		return "Accommodation published"
	case Hide:
		return "Accommodation hidden"
	case Delete:
		return "Accommodation deleted"
	}
	return "Accommodation updated"
}
