package policy

import (
	"reflect"
	"sync"
)

// PayloadCarrier is implemented by failure types that carry diagnostic data
// beyond what a bare error code captures. Implementing it is what declares a
// type as payload-bearing. A type that implements it only through pointer
// receivers still declares a payload, but cannot be bound by value.
type PayloadCarrier interface {
	ErrorPayload() any
}

// Escalator is the hook a payload-bearing failure type must provide. The
// policy calls EscalatePayload on the stored failure when a value is requested
// from a failed result, and EscalatePayload must panic with whatever failure
// it wants to surface.
type Escalator interface {
	PayloadCarrier
	EscalatePayload()
}

var (
	carrierType   = reflect.TypeFor[PayloadCarrier]()
	escalatorType = reflect.TypeFor[Escalator]()

	// reflect.Type -> capability
	capabilities sync.Map
)

type capability struct {
	payload bool
	hook    bool
	// payload declared on *E only
	pointerOnly bool
}

func capabilityOf(t reflect.Type) capability {
	if c, ok := capabilities.Load(t); ok {
		return c.(capability)
	}

	c := capability{
		payload: t.Implements(carrierType),
		hook:    t.Implements(escalatorType),
	}
	if !c.payload && t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface &&
		reflect.PointerTo(t).Implements(carrierType) {
		c.payload = true
		c.pointerOnly = true
	}
	actual, _ := capabilities.LoadOrStore(t, c)
	return actual.(capability)
}

// HasErrorPayload reports whether failure type E declares an error payload.
// It depends on E alone and gives the same answer for the whole program.
func HasErrorPayload[E any]() bool {
	return capabilityOf(reflect.TypeFor[E]()).payload
}
