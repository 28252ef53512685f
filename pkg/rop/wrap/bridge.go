package wrap

import (
	"context"

	"github.com/ib-77/ropwrap/pkg/rop"
)

// Lift builds a nested result from the usual (value, error) pair, where err
// is the outer failure. Context cancellation and deadline errors become an
// outer cancel.
func Lift[T any](inner rop.Result[T], err error) rop.Nested[T] {
	if err != nil {
		if rop.IsCancellationError(err) {
			return rop.Interrupted[T](err)
		}
		return rop.Broken[T](err)
	}
	return rop.Success(inner)
}

// Split is the reverse of Lift.
func Split[T any](n rop.Nested[T]) (rop.Result[T], error) {
	if n.IsSuccess() {
		return n.Result(), nil
	}

	switch {
	case n.IsEmpty():
		return rop.Result[T]{}, rop.ErrEmptyResult
	case n.Err() == nil:
		// cancelled without a cause
		return rop.Result[T]{}, context.Canceled
	default:
		return rop.Result[T]{}, n.Err()
	}
}
