package models

import "errors"

// ErrorKind classifies service failures so handlers can map them to HTTP
// statuses without string matching.
type ErrorKind int

const (
	ErrKindMissingField ErrorKind = iota
	ErrKindNotFound
	ErrKindConflict
	ErrKindUpstream
)

// AppError is the error type returned by every service operation.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// MissingField reports a required identifier absent from the request.
func MissingField(field string) *AppError {
	return &AppError{Kind: ErrKindMissingField, Message: field + " is required"}
}

// NotFound reports an entity absent for the given id.
func NotFound(entity string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Message: entity + " not found"}
}

// Conflict reports a duplicate unique field.
func Conflict(message string) *AppError {
	return &AppError{Kind: ErrKindConflict, Message: message}
}

// Upstream wraps a data-store or collaborator failure.
func Upstream(message string, err error) *AppError {
	return &AppError{Kind: ErrKindUpstream, Message: message, Err: err}
}

// KindOf extracts the error kind, defaulting to upstream for unknown errors.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ErrKindUpstream
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
