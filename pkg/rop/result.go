package rop

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/rop/policy"
)

// Result is the railway result: a success value, a failure, a cancellation
// or nothing. Fail(nil) and the zero value hold nothing.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// CancelFrom carries a failed or cancelled result over to another value type.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Result returns the success value without checking state.
func (r Result[T]) Result() T {
	return r.result
}

// Err returns the failure without checking state.
func (r Result[T]) Err() error {
	return r.err
}

// MustResult returns the success value. A failed or cancelled result panics
// with a *policy.SystemError wrapping its error, an empty one with
// policy.ErrNoValue.
func (r Result[T]) MustResult() T {
	policy.WideValueCheck[error](r)
	return r.result
}

// MustErr returns the error and panics with policy.ErrNoError if there is none.
func (r Result[T]) MustErr() error {
	policy.WideErrorCheck[error](r)
	return r.err
}

func (r Result[T]) HasValue() bool {
	return r.isSuccess
}

func (r Result[T]) HasError() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) AssumeError() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.HasError() && !r.isCancel
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
