package apperror

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type stackTracer interface {
	StackTrace() string
}

// StackOf returns the first stack recorded in the chain of err.
func StackOf(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}
	return ""
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	Value interface{}
	Stack string
}

// Recovered builds a PanicError from a recover() value. It must be called
// from the deferred function so the stack still points at the panic.
func Recovered(v interface{}) *PanicError {
	return &PanicError{Value: v, Stack: string(debug.Stack())}
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func (e *PanicError) StackTrace() string { return e.Stack }
