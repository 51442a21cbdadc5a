package policy

import "reflect"

func raiseSystemError[E any](src Source[E]) {
	panic(NewSystemError(src.AssumeError()))
}

func raisePayload[E Escalator](src Source[E]) {
	failure := src.AssumeError()
	failure.EscalatePayload()
	panic(escalationReturned(failure))
}

func raiseDynamicPayload[E any](src Source[E]) {
	failure := src.AssumeError()
	hook, ok := any(failure).(Escalator)
	if !ok {
		// nil interface value stored as the failure
		panic(&ContractError{Type: reflect.TypeFor[E](), Reason: "stored failure is nil and cannot escalate its payload"})
	}
	hook.EscalatePayload()
	panic(escalationReturned(failure))
}
