package policy

import (
	"reflect"
	"sync"
)

// Policy is the throw-as-system-error access policy bound to failure type E.
// The zero value is usable and binds itself with Select on first escalation.
type Policy[E any] struct {
	escalate func(src Source[E])
	payload  bool
}

// reflect.Type -> Policy[E]
var bindings sync.Map

// Select binds the policy for E, picking the handler variant from E's
// capability. A payload-bearing E without the EscalatePayload hook is refused
// with a *ContractError; it is never bound to the code-only variant.
func Select[E any]() (Policy[E], error) {
	t := reflect.TypeFor[E]()
	c := capabilityOf(t)

	if !c.payload {
		return Policy[E]{escalate: raiseSystemError[E]}, nil
	}
	if c.pointerOnly {
		return Policy[E]{}, pointerReceivers(t)
	}
	if !c.hook {
		return Policy[E]{}, &ContractError{
			Type:   t,
			Reason: "declares an error payload but has no EscalatePayload() hook; define one to say how the payload is raised",
		}
	}
	return Policy[E]{escalate: raiseDynamicPayload[E], payload: true}, nil
}

// MustSelect is like Select but panics if E cannot be bound. It is meant for
// package-level variables so a missing hook stops the program at init.
func MustSelect[E any]() Policy[E] {
	p, err := Select[E]()
	if err != nil {
		panic(err)
	}
	return p
}

// WithPayload binds the payload variant. The constraint makes a missing hook a
// compile error.
func WithPayload[E Escalator]() Policy[E] {
	return Policy[E]{escalate: raisePayload[E], payload: true}
}

// CodeOnly binds the variant that raises a *SystemError. It refuses failure
// types that declare a payload, since the payload would be dropped.
func CodeOnly[E any]() (Policy[E], error) {
	t := reflect.TypeFor[E]()
	c := capabilityOf(t)
	if c.pointerOnly {
		return Policy[E]{}, pointerReceivers(t)
	}
	if c.payload {
		return Policy[E]{}, &ContractError{
			Type:   t,
			Reason: "declares an error payload and cannot be bound code-only",
		}
	}
	return Policy[E]{escalate: raiseSystemError[E]}, nil
}

func pointerReceivers(t reflect.Type) *ContractError {
	return &ContractError{
		Type:   t,
		Reason: "declares its error payload with pointer receivers; bind *" + t.String() + " or use value receivers",
	}
}

func bound[E any]() Policy[E] {
	t := reflect.TypeFor[E]()
	if p, ok := bindings.Load(t); ok {
		return p.(Policy[E])
	}

	p, _ := bindings.LoadOrStore(t, MustSelect[E]())
	return p.(Policy[E])
}

func (p Policy[E]) handler() func(src Source[E]) {
	if p.escalate == nil {
		return bound[E]().escalate
	}
	return p.escalate
}

// HasErrorPayload reports which variant p escalates with.
func (p Policy[E]) HasErrorPayload() bool {
	if p.escalate == nil {
		return HasErrorPayload[E]()
	}
	return p.payload
}

// WideValueCheck returns if src holds a value. If src holds a failure it
// escalates that failure, and if src is empty it panics with ErrNoValue.
func (p Policy[E]) WideValueCheck(src Source[E]) {
	if src.HasValue() {
		return
	}
	if src.HasError() {
		p.handler()(src)
	}
	panic(ErrNoValue)
}

// WideErrorCheck returns if src holds a failure and panics with ErrNoError
// otherwise, whether src holds a value or nothing.
func (p Policy[E]) WideErrorCheck(src Source[E]) {
	if !src.HasError() {
		panic(ErrNoError)
	}
}

// WideValueCheck checks src with the policy bound for E.
func WideValueCheck[E any](src Source[E]) {
	Policy[E]{}.WideValueCheck(src)
}

// WideErrorCheck checks src with the policy bound for E.
func WideErrorCheck[E any](src Source[E]) {
	Policy[E]{}.WideErrorCheck(src)
}
