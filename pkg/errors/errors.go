// Package errors defines the coded errors of the layout engine.
//
// A layout pass fails only on configuration errors: specs that contradict
// each other or the chart rotation. Degenerate inputs such as a zero-area
// frame, deselecting every series or an id nobody declared are not errors;
// the stages return empty results for them.
//
// Errors carry a [Code] and usually a [Subject], the spec they are about:
//
//	err := errors.Axis("y").New(errors.ErrCodeInvalidDomain, "min %g is greater than max %g", lo, hi)
//	err.Error() // INVALID_DOMAIN: [axis y] min 3 is greater than max 1
//
// Stages wrap errors with their name; match them with [Is] or [CodeOf].
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

// Configuration errors fail the pass that saw them.
const (
	ErrCodeInvalidSpec      Code = "INVALID_SPEC"
	ErrCodeInvalidDomain    Code = "INVALID_DOMAIN"
	ErrCodeInvalidAxis      Code = "INVALID_AXIS"
	ErrCodeInvalidRotation  Code = "INVALID_ROTATION"
	ErrCodeMultipleSettings Code = "MULTIPLE_SETTINGS"
)

// Errors outside the layout itself: command-line input, fixtures and
// encodings, and the text surface.
const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidFixture Code = "INVALID_FIXTURE"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeInternal       Code = "INTERNAL_ERROR"
)

// Configuration reports whether the code marks a configuration error.
func (c Code) Configuration() bool {
	switch c {
	case ErrCodeInvalidSpec, ErrCodeInvalidDomain, ErrCodeInvalidAxis,
		ErrCodeInvalidRotation, ErrCodeMultipleSettings:
		return true
	}
	return false
}

// Subject names the spec an error is about, such as "axis y".
type Subject string

// Settings is the subject of errors in the settings spec.
const Settings Subject = "settings"

// Axis returns the subject of an axis spec.
func Axis(id string) Subject { return Subject("axis " + id) }

// Series returns the subject of a series spec.
func Series(id string) Subject { return Subject("series " + id) }

// Group returns the subject of a y group.
func Group(id string) Subject { return Subject("group " + id) }

// New creates an error about s.
func (s Subject) New(code Code, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Subject = s
	return e
}

// Error is a coded error.
type Error struct {
	Code    Code
	Subject Subject // empty when no single spec is at fault
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = "[" + string(e.Subject) + "] " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an error without a subject.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error caused by cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err's chain holds an *Error with the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return CodeOf(err).Configuration()
}

// SubjectOf returns the subject of the first *Error in err's chain.
func SubjectOf(err error) Subject {
	var e *Error
	if errors.As(err, &e) {
		return e.Subject
	}
	return ""
}
