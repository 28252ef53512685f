package wrap

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropwrap/pkg/rop"
)

func tripleScoped(in rop.Nested[int], reached *bool) (out rop.Nested[int]) {
	defer Catch(&out)

	v := Try(in)
	*reached = true
	return rop.Valid(v * 3)
}

func tripleScopedWith(in rop.Nested[int], reached *bool) (out rop.Nested[int]) {
	defer Catch(&out)

	v := TryWith(in, toInvalidInput)
	*reached = true
	return rop.Valid(v * 3)
}

func TestTry_SuccessContinues(t *testing.T) {
	t.Parallel()
	reached := false

	out := tripleScoped(rop.Valid(5), &reached)

	assert.True(t, reached)
	require.Equal(t, rop.LevelOk, rop.LevelOf(out))
	assert.Equal(t, 15, out.Result().Result())
}

func TestTry_OuterErrorReturnedUnchanged(t *testing.T) {
	t.Parallel()
	in := rop.Broken[int](errStore)
	reached := false

	out := tripleScoped(in, &reached)

	assert.False(t, reached)
	require.Equal(t, rop.LevelOuter, rop.LevelOf(out))
	assert.Same(t, errStore, out.Err())
	assert.Equal(t, in.Id(), out.Id())
}

func TestTry_OuterCancel(t *testing.T) {
	t.Parallel()
	reached := false

	out := tripleScoped(rop.Interrupted[int](context.Canceled), &reached)

	assert.False(t, reached)
	assert.True(t, out.IsCancel())
	assert.ErrorIs(t, out.Err(), context.Canceled)
}

func TestTry_InnerErrorWrappedInSuccess(t *testing.T) {
	t.Parallel()
	reached := false

	out := tripleScoped(rop.Invalid[int](errInvalid), &reached)

	assert.False(t, reached)
	require.True(t, out.IsSuccess())
	assert.Same(t, errInvalid, out.Result().Err())
}

func TestTryWith_ConstructorApplied(t *testing.T) {
	t.Parallel()
	reached := false

	out := tripleScopedWith(rop.Invalid[int](errInvalid), &reached)

	assert.False(t, reached)
	require.Equal(t, rop.LevelInner, rop.LevelOf(out))
	var target *invalidInputError
	assert.ErrorAs(t, out.Result().Err(), &target)

	outer := tripleScopedWith(rop.Broken[int](errStore), &reached)
	assert.Same(t, errStore, outer.Err())
}

func TestTry_MatchesOk(t *testing.T) {
	t.Parallel()

	inputs := []rop.Nested[int]{
		rop.Valid(1),
		rop.Invalid[int](errInvalid),
		rop.Broken[int](errStore),
		rop.Interrupted[int](errStore),
		{},
	}

	for _, in := range inputs {
		var reached bool
		scoped := tripleScoped(in, &reached)
		_, ret, ok := Ok[int, int](in)

		if ok {
			assert.Equal(t, rop.LevelOk, rop.LevelOf(scoped))
			continue
		}
		assert.Equal(t, rop.LevelOf(ret), rop.LevelOf(scoped))
		assert.Equal(t, ret.Err(), scoped.Err())
		assert.Equal(t, ret.IsCancel(), scoped.IsCancel())
		assert.Equal(t, ret.Result().Err(), scoped.Result().Err())
	}
}

func TestCatch_PassesOtherPanics(t *testing.T) {
	t.Parallel()
	other := errors.New("unrelated")

	assert.PanicsWithValue(t, other, func() {
		var out rop.Nested[int]
		func() {
			defer Catch(&out)
			panic(other)
		}()
	})
}

func TestTry_WithoutCatchPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected an error panic value, got %#v", r)
		}
		assert.Contains(t, err.Error(), "without a deferred Catch")
		assert.Contains(t, err.Error(), "store unavailable")
	}()

	Try(rop.Broken[int](errStore))
	t.Fatalf("Try must not return on failure")
}

func TestCatch_NilDestinationKeepsTryPanic(t *testing.T) {
	t.Parallel()

	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Fatalf("expected the Try panic to reach the caller")
		}
		assert.Contains(t, err.Error(), "store unavailable")
	}()

	func() {
		defer Catch[int](nil)
		Try(rop.Broken[int](errStore))
	}()
	t.Fatalf("Try must not return on failure")
}

// reserve calls Try without a Catch of its own.
func reserve(in rop.Nested[int]) int {
	return Try(in) + 1
}

func TestTry_HelperWithoutCatchEndsCaller(t *testing.T) {
	t.Parallel()

	handle := func(in rop.Nested[int], after *bool) (out rop.Nested[string]) {
		defer Catch(&out)

		n := reserve(in)
		*after = true
		return rop.Valid(strconv.Itoa(n))
	}

	after := false
	out := handle(rop.Invalid[int](errInvalid), &after)
	assert.False(t, after)
	require.Equal(t, rop.LevelInner, rop.LevelOf(out))
	assert.Same(t, errInvalid, out.Result().Err())

	out = handle(rop.Valid(1), &after)
	assert.True(t, after)
	assert.Equal(t, "2", out.Result().Result())
}
