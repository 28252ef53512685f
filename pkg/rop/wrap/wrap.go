package wrap

import "github.com/ib-77/ropwrap/pkg/rop"

// Ok unwraps n.
//
// When both levels of n succeeded it returns the inner value and ok is true.
// Otherwise ret is what the calling function should return right away:
// the outer failure of n unchanged, or a new outer success holding the
// inner failure of n.
func Ok[T, Out any](n rop.Nested[T]) (value T, ret rop.Nested[Out], ok bool) {
	return OkWith[T, Out](n, nil)
}

// OkWith is Ok with the inner error passed through wrapErr before it is
// returned. Outer errors never go through wrapErr, and neither does an inner
// cancel without a cause. A nil wrapErr, or one returning nil, keeps the
// inner error as is.
func OkWith[T, Out any](n rop.Nested[T], wrapErr func(error) error) (value T, ret rop.Nested[Out], ok bool) {
	if n.IsFailure() {
		return value, rop.FailFrom[rop.Result[T], rop.Result[Out]](n), false
	}

	inner := n.Result()
	if inner.IsFailure() {
		failed := rop.FailFrom[T, Out](inner)
		if wrapErr != nil && failed.Err() != nil {
			if err := wrapErr(failed.Err()); err != nil {
				failed = failed.WithErr(err)
			}
		}
		return value, rop.Success(failed), false
	}

	return inner.Result(), ret, true
}
