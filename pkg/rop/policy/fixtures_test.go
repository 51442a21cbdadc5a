package policy

import (
	"fmt"
	"sync/atomic"
)

type stub[E any] struct {
	value   bool
	failed  bool
	failure E
}

func (s stub[E]) HasValue() bool { return s.value }
func (s stub[E]) HasError() bool { return s.failed }
func (s stub[E]) AssumeError() E { return s.failure }

func withValue[E any]() stub[E] {
	return stub[E]{value: true}
}

func withFailure[E any](failure E) stub[E] {
	return stub[E]{failed: true, failure: failure}
}

func empty[E any]() stub[E] {
	return stub[E]{}
}

// errno is a bare code without payload
type errno int

type codedError struct {
	code int
}

func (e codedError) Error() string  { return fmt.Sprintf("coded failure %d", e.code) }
func (e codedError) ErrorCode() int { return e.code }

type diskFull struct {
	code   int
	detail string
}

func (d diskFull) ErrorPayload() any { return d.detail }

func (d diskFull) EscalatePayload() {
	panic(&storageError{code: d.code, detail: d.detail})
}

type storageError struct {
	code   int
	detail string
}

func (e *storageError) Error() string {
	return fmt.Sprintf("storage failure %d: %s", e.code, e.detail)
}

type counted struct {
	calls *atomic.Int32
}

func (c counted) ErrorPayload() any { return c.calls.Load() }

func (c counted) EscalatePayload() {
	c.calls.Add(1)
	panic(fmt.Errorf("escalated after %d calls", c.calls.Load()))
}

// silent escalates by returning, which the policy must not accept
type silent struct {
	code  int
	calls *int
}

func (s silent) ErrorPayload() any { return s.code }
func (s silent) ErrorCode() int    { return s.code }
func (s silent) EscalatePayload()  { *s.calls++ }

// unhooked declares a payload but never says how to raise it
type unhooked struct {
	detail string
}

func (u unhooked) ErrorPayload() any { return u.detail }

type pointerCarrier struct{}

func (p *pointerCarrier) ErrorPayload() any { return nil }

// volumeFailure has both payload methods on the pointer only
type volumeFailure struct {
	detail string
}

func (v *volumeFailure) ErrorPayload() any { return v.detail }

func (v *volumeFailure) EscalatePayload() {
	panic(&storageError{detail: v.detail})
}

type escalating interface {
	error
	Escalator
}

// labelled escalates by panicking with itself rather than an error
type labelled struct {
	label string
}

func (l labelled) ErrorPayload() any { return l.label }
func (l labelled) EscalatePayload()  { panic(l) }
