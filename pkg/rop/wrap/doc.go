// Package wrap unwraps two-level results, returning early with the error
// wrapped one level up.
//
// A function that can fail for infrastructure reasons and also reject its
// input returns rop.Nested[T]. When such a function calls another one of the
// same shape, the outer failure of the callee is its own outer failure, and
// the inner failure of the callee becomes its own inner failure:
//
//	func Handle(ctx context.Context, in Input) (out rop.Nested[Final]) {
//		v, ret, ok := wrap.Ok[Validated, Final](validateWithStore(ctx, in))
//		if !ok {
//			return ret
//		}
//		return rop.Valid(compute(v))
//	}
//
// OkWith takes a constructor applied to the inner error before it is
// returned, for callers whose inner errors are of their own kind.
//
// Try and TryWith give the same behavior as an expression. They must be
// paired with a deferred Catch in the same function:
//
//	func Handle(ctx context.Context, in Input) (out rop.Nested[Final]) {
//		defer wrap.Catch(&out)
//		v := wrap.Try(validateWithStore(ctx, in))
//		return rop.Valid(compute(v))
//	}
//
// Try leaves through every frame up to the nearest deferred Catch. A helper
// that calls Try without its own Catch therefore ends its caller as well,
// and the caller's Catch receives the helper's failure.
//
// Lift and Split convert between rop.Nested[T] and the plain Go shape
// (rop.Result[T], error), where the outer level is an ordinary error return.
package wrap
