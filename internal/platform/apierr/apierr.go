package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidRequest      = "invalid_request"
	CodeUnauthenticated     = "unauthenticated"
	CodeProfileNotFound     = "profile_not_found"
	CodeProfileExists       = "profile_exists"
	CodeSubjectNotFound     = "subject_not_found"
	CodeQuizNotFound        = "quiz_not_found"
	CodeAlreadyGraded       = "already_graded"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeUpstreamError       = "upstream_error"
	CodeMalformedGeneration = "malformed_generation"
	CodePersistence         = "persistence_error"
	CodeInternal            = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// From returns the *Error carried by err, or a 500 internal error wrapping it.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(http.StatusInternalServerError, CodeInternal, err)
}

// HasCode reports whether err carries an *Error with the given code.
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func InvalidRequest(err error) *Error {
	return New(http.StatusBadRequest, CodeInvalidRequest, err)
}

func Unauthenticated(msg string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthenticated, errors.New(msg))
}

func ProfileNotFound() *Error {
	return New(http.StatusNotFound, CodeProfileNotFound, errors.New("Student not found"))
}

func ProfileExists() *Error {
	return New(http.StatusConflict, CodeProfileExists, errors.New("Student profile already exists"))
}

func SubjectNotFound() *Error {
	return New(http.StatusNotFound, CodeSubjectNotFound, errors.New("Subject not found"))
}

func QuizNotFound() *Error {
	return New(http.StatusNotFound, CodeQuizNotFound, errors.New("Quiz not found or access denied"))
}

func AlreadyGraded() *Error {
	return New(http.StatusConflict, CodeAlreadyGraded, errors.New("Quiz already completed"))
}

func UpstreamUnavailable(err error) *Error {
	return New(http.StatusServiceUnavailable, CodeUpstreamUnavailable, withCause("completion API unavailable", err))
}

// UpstreamError carries only the upstream status; the response body stays in logs.
func UpstreamError(status int) *Error {
	return New(http.StatusBadGateway, CodeUpstreamError, fmt.Errorf("completion API error: %d", status))
}

func MalformedGeneration(err error) *Error {
	return New(http.StatusBadGateway, CodeMalformedGeneration, withCause("Invalid JSON response from AI", err))
}

// Persistence reports a failed write as "Failed to save <what>".
func Persistence(what string, err error) *Error {
	return New(http.StatusInternalServerError, CodePersistence, withCause("Failed to save "+what, err))
}

// causeError keeps the client-facing message fixed while the cause stays
// reachable through errors.Is/As and in logs via Cause.
type causeError struct {
	msg   string
	cause error
}

func withCause(msg string, cause error) error {
	return &causeError{msg: msg, cause: cause}
}

func (e *causeError) Error() string { return e.msg }
func (e *causeError) Unwrap() error { return e.cause }

// Cause returns the innermost detail behind err's public message, for logs.
func Cause(err error) error {
	var ce *causeError
	if errors.As(err, &ce) && ce.cause != nil {
		return ce.cause
	}
	return err
}
