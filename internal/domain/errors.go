package domain

import "fmt"

// The four error kinds every operation returns: bad input, operation
// invalid for the current state, missing entity, and failed
// authentication or authorization. Mutations that fail with any of these
// leave storage untouched.

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func Conflictf(format string, args ...any) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

func Authf(format string, args ...any) error {
	return &AuthError{Reason: fmt.Sprintf(format, args...)}
}
