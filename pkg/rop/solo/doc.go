// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T].
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Switch/Map/Try: move to the next step on success, carry failures over
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Unwrap: checked access to the value, panics on anything but success
// - Guard: run a step that uses checked accessors and turn what it raised
//   back into a failed or cancelled result
package solo
