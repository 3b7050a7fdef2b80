package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsRequired    = errors.New("value is required")
	ErrObjectInvalidState = errors.New("object is in an invalid state")
	ErrAggregateFailed    = errors.New("aggregate operation failed")
)

// sanitize flattens multi-line values so error messages stay single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or out of the
// accepted domain.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ObjectInvalidStateError indicates that an operation is not allowed given the
// object's current status, e.g. rescheduling a cancelled delivery.
type ObjectInvalidStateError struct {
	ParamName string
	State     string
	Cause     error
}

// NewObjectInvalidStateError creates an ObjectInvalidStateError without an underlying cause.
func NewObjectInvalidStateError(paramName, state string) *ObjectInvalidStateError {
	return &ObjectInvalidStateError{ParamName: paramName, State: state}
}

// NewObjectInvalidStateErrorWithCause creates an ObjectInvalidStateError wrapping an underlying cause.
func NewObjectInvalidStateErrorWithCause(paramName, state string, cause error) *ObjectInvalidStateError {
	return &ObjectInvalidStateError{ParamName: paramName, State: state, Cause: cause}
}

func (e *ObjectInvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s (cause: %s)", ErrObjectInvalidState, e.ParamName, e.State, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s", ErrObjectInvalidState, e.ParamName, e.State)
}

func (e *ObjectInvalidStateError) Unwrap() error {
	return ErrObjectInvalidState
}

// AggregateError indicates that a multi-record protocol failed partway through.
// Step names the protocol step that failed so callers can tell which writes were
// rolled back. The underlying store transaction guarantees no partial state
// survives; this error only reports the failure.
type AggregateError struct {
	Operation string
	Step      string
	Cause     error
}

// NewAggregateError creates an AggregateError for the given operation and failed step.
func NewAggregateError(operation, step string, cause error) *AggregateError {
	return &AggregateError{Operation: operation, Step: step, Cause: cause}
}

func (e *AggregateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s failed at step %q (cause: %s)",
			ErrAggregateFailed, e.Operation, e.Step, e.Cause)
	}
	return fmt.Sprintf("%s: %s failed at step %q", ErrAggregateFailed, e.Operation, e.Step)
}

func (e *AggregateError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrAggregateFailed
}

// Is lets errors.Is match both the sentinel and the wrapped cause.
func (e *AggregateError) Is(target error) bool {
	return target == ErrAggregateFailed
}
