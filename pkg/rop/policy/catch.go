package policy

import (
	"errors"
	"runtime"
)

// Catch runs fn and returns the failure it raised, or nil. A raised value
// that is not an error comes back as a *RaisedError. Runtime errors are not
// failures raised by a check and are re-panicked.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		raised, ok := r.(error)
		if !ok {
			err = &RaisedError{Value: r}
			return
		}
		var re runtime.Error
		if errors.As(raised, &re) {
			panic(r)
		}
		err = raised
	}()

	fn()
	return nil
}

// Try runs fn like Catch and returns its value when nothing was raised.
func Try[T any](fn func() T) (v T, err error) {
	err = Catch(func() {
		v = fn()
	})
	return v, err
}
