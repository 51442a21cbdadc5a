package rop

import (
	"time"

	"github.com/ib-77/outcome/pkg/rop/policy"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// Checked is a result whose state can be verified before access
type Checked[T any] interface {
	WithCancel[T]
	policy.Source[error]
	// MustResult returns the value or panics with the escalated failure
	MustResult() T
	// MustErr returns the error or panics with policy.ErrNoError
	MustErr() error
}

var _ Checked[int] = Result[int]{}
