package wrap

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropwrap/pkg/rop"
)

func TestLift(t *testing.T) {
	t.Parallel()

	ok := Lift(rop.Success(1), nil)
	require.Equal(t, rop.LevelOk, rop.LevelOf(ok))
	assert.Equal(t, 1, ok.Result().Result())

	invalid := Lift(rop.Fail[int](errInvalid), nil)
	require.Equal(t, rop.LevelInner, rop.LevelOf(invalid))
	assert.Same(t, errInvalid, invalid.Result().Err())

	broken := Lift(rop.Success(1), errStore)
	require.Equal(t, rop.LevelOuter, rop.LevelOf(broken))
	assert.False(t, broken.IsCancel())
	assert.Same(t, errStore, broken.Err())

	cancelled := Lift(rop.Success(1), fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.True(t, cancelled.IsCancel())
}

func TestSplit(t *testing.T) {
	t.Parallel()

	inner, err := Split(rop.Valid("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", inner.Result())

	inner, err = Split(rop.Invalid[string](errInvalid))
	require.NoError(t, err)
	assert.Same(t, errInvalid, inner.Err())

	_, err = Split(rop.Broken[string](errStore))
	assert.Same(t, errStore, err)

	_, err = Split(rop.Nested[string]{})
	assert.ErrorIs(t, err, rop.ErrEmptyResult)

	_, err = Split(rop.Interrupted[string](nil))
	assert.ErrorIs(t, err, context.Canceled)
}
