// Package nest contains synchronous railway helpers over rop.Nested[T].
//
// Every helper short-circuits the way wrap.Ok does: an outer failure passes
// through unchanged, an inner failure passes through as an inner failure,
// and callbacks only run when both levels succeeded.
//
// Highlights:
// - Switch/Map: continue with the inner value
// - Validate: turn a failed check into an inner failure
// - ValidateAll/Join: run several checks, joining their failures
// - FailOnError: turn an error from a check into an inner failure
// - DoubleTee: side effects per outcome
// - Try: call a function (Out, error) and turn its error into an outer failure
// - Flatten: collapse both levels into one Result
// - Finally: reduce to a concrete value via handlers
package nest
