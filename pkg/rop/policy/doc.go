// Package policy implements the wide (checked) access policy shared by the
// result containers in this module.
//
// A checked accessor calls WideValueCheck before handing out a success value
// and WideErrorCheck before handing out a failure value. A check either
// returns, meaning the access is safe, or raises by panicking. It never
// reports the problem through a return value.
//
// What gets raised when a value is requested from a failed result depends on
// the failure type E:
// - E without an error payload: a *SystemError built from the stored failure
// - E implementing PayloadCarrier: the failure's own EscalatePayload hook
//
// The variant is a property of the type. It is resolved once per E when the
// policy is bound (Select, WithPayload, CodeOnly) and never per check. A
// payload-bearing type without the hook cannot be bound: WithPayload rejects
// it at compile time and Select rejects it with a *ContractError.
//
// Raised failures can be turned back into errors with Catch and Try.
package policy
