package result

// Result is a tagged success/failure wrapper used by every fallible
// operation in the fetch pipeline instead of a returned error.
// Exactly one variant is active: Ok carries a value and no message,
// Err carries a user-facing message (and an opaque cause) and no value.
type Result[T any] struct {
	ok      bool
	value   T
	message string
	cause   error
}

// Ok creates a success result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Err creates a failure result carrying a user-facing message.
// The cause is kept for logging only and is never shown to users;
// it may be nil.
func Err[T any](message string, cause error) Result[T] {
	return Result[T]{message: message, cause: cause}
}

// IsOk reports whether the result is the success variant.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value returns the carried value. It is the zero value for Err results.
func (r Result[T]) Value() T {
	return r.value
}

// Message returns the user-facing failure message. It is empty for Ok results.
func (r Result[T]) Message() string {
	return r.message
}

// Cause returns the underlying technical error of an Err result, if any.
func (r Result[T]) Cause() error {
	return r.cause
}
