// Package apperr classifies the errors surfaced by the service layer so that
// handlers can map them onto HTTP statuses without inspecting messages.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindPermissionDenied
	KindUnauthenticated
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified error with a human-readable detail message.
type Error struct {
	Kind   Kind
	Detail string
	// Fields carries per-field messages for validation failures.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the classification of err, KindInternal when unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// NotFound names the missing entity and id, e.g. "service 7 not found".
func NotFound(entity string, id interface{}) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf("%s %v not found", entity, id)}
}

func PermissionDenied(detail string) *Error {
	return &Error{Kind: KindPermissionDenied, Detail: detail}
}

func Unauthenticated(detail string) *Error {
	return &Error{Kind: KindUnauthenticated, Detail: detail}
}

func Conflict(detail string) *Error {
	return &Error{Kind: KindConflict, Detail: detail}
}

func Validation(detail string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Detail: detail, Fields: fields}
}
