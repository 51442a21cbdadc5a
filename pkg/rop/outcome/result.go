package outcome

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/rop/policy"
)

type status uint8

const (
	statusHaveValue status = 1 << iota
	statusHaveError
)

type Result[T, E any] struct {
	value  T
	err    E
	status status
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:  value,
		status: statusHaveValue,
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:    err,
		status: statusHaveError,
	}
}

// Empty returns a result holding nothing; it equals the zero Result.
func Empty[T, E any]() Result[T, E] {
	return Result[T, E]{}
}

func (r Result[T, E]) HasValue() bool {
	return r.status&statusHaveValue != 0
}

func (r Result[T, E]) HasError() bool {
	return r.status&statusHaveError != 0
}

func (r Result[T, E]) IsEmpty() bool {
	return r.status == 0
}

// AssumeValue returns the stored value without checking state.
func (r Result[T, E]) AssumeValue() T {
	return r.value
}

// AssumeError returns the stored failure without checking state.
func (r Result[T, E]) AssumeError() E {
	return r.err
}

// Value returns the success value. It panics with the escalated failure if r
// failed and with policy.ErrNoValue if r is empty.
func (r Result[T, E]) Value() T {
	policy.WideValueCheck[E](r)
	return r.value
}

// Failure returns the failure value. It panics with policy.ErrNoError unless
// r failed.
func (r Result[T, E]) Failure() E {
	policy.WideErrorCheck[E](r)
	return r.err
}

// TakeValue checks like Value, then moves the value out and leaves r empty.
func (r *Result[T, E]) TakeValue() T {
	policy.WideValueCheck[E](r)
	v := r.value
	r.Reset()
	return v
}

// TakeFailure checks like Failure, then moves the failure out and leaves r
// empty.
func (r *Result[T, E]) TakeFailure() E {
	policy.WideErrorCheck[E](r)
	e := r.err
	r.Reset()
	return e
}

func (r *Result[T, E]) Reset() {
	*r = Result[T, E]{}
}

// Get returns the value, or the failure the checked access raised as an
// error. A hook that raises something other than an error is reported as a
// *policy.RaisedError.
func (r Result[T, E]) Get() (T, error) {
	return policy.Try(r.Value)
}

func (r Result[T, E]) String() string {
	switch {
	case r.HasValue():
		return fmt.Sprintf("Ok(%v)", r.value)
	case r.HasError():
		return fmt.Sprintf("Fail(%v)", r.err)
	default:
		return "Empty"
	}
}
