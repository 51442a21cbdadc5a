// Package outcome provides Result[T, E], a container holding a success value
// of type T, a failure value of type E, or nothing.
//
// Narrow accessors (AssumeValue, AssumeError) trust the caller. Checked
// accessors (Value, Failure, TakeValue, TakeFailure) run the wide checks of
// package policy first and panic when the result is not in the requested
// state. Get turns that panic back into an error.
package outcome
