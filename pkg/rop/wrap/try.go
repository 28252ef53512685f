package wrap

import (
	"fmt"

	"github.com/ib-77/ropwrap/pkg/rop"
)

// unwind carries an early return from Try to Catch.
type unwind struct {
	level rop.Level
	res   rop.Result[struct{}]
}

func (u *unwind) Error() string {
	return fmt.Sprintf("wrap: Try returned early (%s error: %v) without a deferred Catch", u.level, u.res.Err())
}

// Try returns the inner value of n. On any failure it leaves the calling
// function, whose deferred Catch turns the failure into its return value
// the same way Ok does.
func Try[T any](n rop.Nested[T]) T {
	return TryWith(n, nil)
}

// TryWith is Try with the inner error passed through wrapErr, like OkWith.
func TryWith[T any](n rop.Nested[T], wrapErr func(error) error) T {
	v, ret, ok := OkWith[T, struct{}](n, wrapErr)
	if ok {
		return v
	}

	if ret.IsFailure() {
		panic(&unwind{level: rop.LevelOuter, res: rop.FailFrom[rop.Result[struct{}], struct{}](ret)})
	}
	panic(&unwind{level: rop.LevelInner, res: ret.Result()})
}

// Catch must be deferred directly by a function that calls Try. It stores
// the early return value in dst, which must not be nil. Panics not raised
// by Try are passed on, and so is the Try panic itself when dst is nil.
func Catch[Out any](dst *rop.Nested[Out]) {
	r := recover()
	if r == nil {
		return
	}

	u, ok := r.(*unwind)
	if !ok || dst == nil {
		panic(r)
	}

	if u.level == rop.LevelOuter {
		*dst = rop.FailFrom[struct{}, rop.Result[Out]](u.res)
		return
	}
	*dst = rop.Success(rop.FailFrom[struct{}, Out](u.res))
}
