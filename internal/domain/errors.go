// internal/domain/errors.go
package domain

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Club-related errors
	ErrClubNotFound  = notFound("club not found")
	ErrDuplicateClub = conflict("a club with this name and school already exists")

	// Submission-related errors
	ErrSubmissionNotFound   = notFound("submission not found")
	ErrSubmissionNotPending = conflict("only pending submissions can be reviewed")
	ErrInvalidSubmission    = errors.New("invalid submission type")

	// Admin-related errors
	ErrAdminNotFound      = notFound("admin user not found")
	ErrAdminExists        = conflict("admin username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrPasswordTooWeak    = errors.New("password too weak")
)

// kindError ties a specific error to one of the general classes so callers
// can match either the specific error or its class with errors.Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func notFound(msg string) error { return &kindError{msg: msg, kind: ErrNotFound} }

func conflict(msg string) error { return &kindError{msg: msg, kind: ErrConflict} }

// ValidationError is a malformed or out-of-range input. It never carries
// storage state and is always recoverable by resubmitting.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError returns a validation failure for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors collects field errors from request schema validation.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() error { return ErrInvalidInput }

// AppError is an application-level failure with a caller-chosen status and
// code. Zero values default to 400 / bad_request.
type AppError struct {
	Message string
	Status  int
	Code    string
	Details any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status, defaulting to 400.
func (e *AppError) StatusCode() int {
	if e.Status == 0 {
		return http.StatusBadRequest
	}
	return e.Status
}

// ErrorCode returns the envelope code, defaulting to bad_request.
func (e *AppError) ErrorCode() string {
	if e.Code == "" {
		return "bad_request"
	}
	return e.Code
}
