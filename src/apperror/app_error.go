package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

const (
	StatusFail  = "fail"
	StatusError = "error"
)

// AppError is an error raised on purpose by application code. It carries the
// HTTP status code and message that should reach the client as-is.
type AppError struct {
	StatusCode int
	Status     string // "fail" for 4xx, "error" otherwise
	Message    string
	Stack      string
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *AppError) Unwrap() error { return e.Cause }

func (e *AppError) StackTrace() string { return e.Stack }

// New creates an AppError and records the stack of the caller.
func New(statusCode int, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Status:     statusFor(statusCode),
		Message:    message,
		Stack:      string(debug.Stack()),
	}
}

// Wrap is New with a cause attached.
func Wrap(statusCode int, message string, cause error) *AppError {
	e := New(statusCode, message)
	e.Cause = cause
	return e
}

func BadRequest(message string) *AppError { return New(http.StatusBadRequest, message) }

func NotFound(message string) *AppError { return New(http.StatusNotFound, message) }

func statusFor(code int) string {
	if code >= 400 && code < 500 {
		return StatusFail
	}
	return StatusError
}

// Kind tells whether an error was raised by the application or is opaque.
type Kind int

const (
	KindOpaque Kind = iota
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classified is the result of Classify. For KindApplication, App holds the
// matched error; Err always holds the original value.
type Classified struct {
	Kind  Kind
	App   *AppError
	Err   error
	Stack string // "" when nothing in the chain recorded one
}

// Classify looks for an *AppError anywhere in the chain of err.
func Classify(err error) Classified {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr != nil {
		return Classified{Kind: KindApplication, App: appErr, Err: err, Stack: StackOf(err)}
	}
	return Classified{Kind: KindOpaque, Err: err, Stack: StackOf(err)}
}

// Message returns the raw text of an opaque error, or "" for nil.
func (c Classified) Message() string {
	if c.Err == nil {
		return ""
	}
	return c.Err.Error()
}
