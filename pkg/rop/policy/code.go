package policy

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Code is a normalized error code.
type Code int

// CodeUnknown is used when no code can be derived from a failure.
const CodeUnknown Code = -1

// Coder is implemented by failures that know their own code.
type Coder interface {
	ErrorCode() int
}

// SystemError is the generic failure raised for failures without a payload.
// It identifies the condition by code and category and keeps the stored
// failure for inspection.
type SystemError struct {
	Code     Code
	Category string
	Failure  any
	cause    error
}

// NewSystemError normalizes a stored failure:
// a Coder gives its own code, an error keeps itself as the cause and takes the
// code of the first Coder in its chain, an integer is its own code unless it
// does not fit in a Code.
func NewSystemError(failure any) *SystemError {
	e := &SystemError{
		Code:     CodeUnknown,
		Category: fmt.Sprintf("%T", failure),
		Failure:  failure,
	}

	switch f := failure.(type) {
	case Coder:
		e.Code = Code(f.ErrorCode())
		if err, ok := failure.(error); ok {
			e.cause = err
		}
	case error:
		e.cause = f
		var c Coder
		if errors.As(f, &c) {
			e.Code = Code(c.ErrorCode())
			e.Category = fmt.Sprintf("%T", c)
		}
	default:
		if code, ok := integerCode(failure); ok {
			e.Code = code
		}
	}
	return e
}

func escalationReturned(failure any) *SystemError {
	e := NewSystemError(failure)
	if e.cause != nil {
		e.cause = fmt.Errorf("%w: %w", ErrEscalationReturned, e.cause)
	} else {
		e.cause = ErrEscalationReturned
	}
	return e
}

func integerCode(failure any) (Code, bool) {
	v := reflect.ValueOf(failure)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i > math.MaxInt || i < math.MinInt {
			return 0, false
		}
		return Code(i), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return Code(u), true
	default:
		return 0, false
	}
}

func (e *SystemError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("system error %s:%d: %v", e.Category, e.Code, e.cause)
	}
	return fmt.Sprintf("system error %s:%d", e.Category, e.Code)
}

func (e *SystemError) Unwrap() error {
	return e.cause
}
