package policy

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrBadAccess is matched by every state-integrity violation.
	ErrBadAccess = errors.New("bad result access")

	// ErrNoValue is raised when a value is requested from an empty result.
	ErrNoValue error = &BadAccessError{Reason: "no value"}
	// ErrNoError is raised when a failure is requested from a result without one.
	ErrNoError error = &BadAccessError{Reason: "no error"}

	// ErrContract is matched by every *ContractError.
	ErrContract = errors.New("access policy contract violated")

	// ErrEscalationReturned is the cause of the *SystemError raised when an
	// EscalatePayload hook returns instead of panicking.
	ErrEscalationReturned = errors.New("payload escalation returned without raising")
)

// BadAccessError reports a checked accessor used against the wrong state.
type BadAccessError struct {
	Reason string
}

func (e *BadAccessError) Error() string {
	return ErrBadAccess.Error() + ": " + e.Reason
}

func (e *BadAccessError) Unwrap() error {
	return ErrBadAccess
}

// ContractError reports a failure type that cannot be bound to the policy.
type ContractError struct {
	Type   reflect.Type
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrContract, e.Type, e.Reason)
}

func (e *ContractError) Unwrap() error {
	return ErrContract
}

// RaisedError holds a failure raised with a value that is not an error, as an
// escalation hook is free to do.
type RaisedError struct {
	Value any
}

func (e *RaisedError) Error() string {
	return fmt.Sprintf("raised %T: %v", e.Value, e.Value)
}
