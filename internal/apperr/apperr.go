// Package apperr defines the application error taxonomy shared by every
// service: a single error type tagged with a Kind, so callers dispatch on
// an explicit enum instead of concrete error types.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindAccessDenied
	KindAlreadyExists
	KindInvalidCode
)

// Error is the only error type services return for domain failures.
// Entity is the lowercase entity family ("company", "task", ...);
// Constraint carries the violated constraint name for AlreadyExists.
type Error struct {
	Kind       Kind
	Entity     string
	Constraint string
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindNotFound:
		return e.Entity + " not found"
	case KindAccessDenied:
		return "access denied to " + e.Entity
	case KindAlreadyExists:
		if e.Constraint != "" {
			return fmt.Sprintf("%s already exists (constraint %s)", e.Entity, e.Constraint)
		}
		return e.Entity + " already exists"
	case KindInvalidCode:
		return "invalid " + e.Entity + " code"
	}
	return e.Entity + " error"
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity}
}

func NotFoundf(entity, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

func AccessDenied(entity, message string) *Error {
	return &Error{Kind: KindAccessDenied, Entity: entity, Message: message}
}

func AlreadyExists(entity, constraint string) *Error {
	return &Error{Kind: KindAlreadyExists, Entity: entity, Constraint: constraint}
}

func InvalidCode(entity, message string) *Error {
	return &Error{Kind: KindInvalidCode, Entity: entity, Message: message}
}

// KindOf returns the taxonomy kind of err, or 0 when err is not an
// application error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Display maps an error to the user-facing message shown at the
// presentation boundary. Errors outside the taxonomy are stringified.
func Display(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return fmt.Sprintf("An error occurred: %v", err)
	}
	switch e.Kind {
	case KindNotFound:
		return title(e.Entity) + " not found"
	case KindAccessDenied:
		return "You don't have permission to perform this action"
	case KindAlreadyExists:
		return "A " + e.Entity + " like this already exists"
	case KindInvalidCode:
		return "Invalid " + e.Entity + " code. Must be exactly 3 letters"
	}
	return fmt.Sprintf("An error occurred: %v", err)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
