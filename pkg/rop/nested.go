package rop

// Nested is a two-level result. The outer level reports infrastructure
// failures (storage down, context cancelled), the inner level reports
// domain failures (invalid input) and is only meaningful when the outer
// level succeeded.
type Nested[T any] = Result[Result[T]]

// Level tells at which level a nested result stopped.
type Level int

const (
	// LevelOk means both levels succeeded.
	LevelOk Level = iota
	// LevelInner means the outer level succeeded and the inner one did not.
	LevelInner
	// LevelOuter means the outer level did not succeed.
	LevelOuter
)

func (l Level) String() string {
	switch l {
	case LevelOk:
		return "ok"
	case LevelInner:
		return "inner"
	case LevelOuter:
		return "outer"
	default:
		return "unknown"
	}
}

// Valid builds a nested result where both levels succeeded.
func Valid[T any](v T) Nested[T] {
	return Success(Success(v))
}

// Invalid builds a nested result whose inner level failed with err.
func Invalid[T any](err error) Nested[T] {
	return Success(Fail[T](err))
}

// Broken builds a nested result whose outer level failed with err.
func Broken[T any](err error) Nested[T] {
	return Fail[Result[T]](err)
}

// Interrupted builds a nested result whose outer level was cancelled.
func Interrupted[T any](err error) Nested[T] {
	return Cancel[Result[T]](err)
}

// LevelOf classifies n.
func LevelOf[T any](n Nested[T]) Level {
	if !n.IsSuccess() {
		return LevelOuter
	}
	if !n.Result().IsSuccess() {
		return LevelInner
	}
	return LevelOk
}
