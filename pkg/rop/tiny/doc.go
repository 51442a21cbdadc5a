// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry/Map: compose steps that run only on success
// - Guard: run a step that may use checked accessors; what it raises ends
//   the chain as a failure or cancellation
// - Ensure: trigger side effects without changing the result
// - Unwrap: checked access to the final value
// - Finally: reduce to a concrete value via handlers
package tiny
