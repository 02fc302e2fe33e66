package response

// Result is the outcome of one mutation pipeline operation: either a
// decoded payload or an APIError, never both. Callers branch on IsOk
// rather than sniffing field presence.
type Result[T any] struct {
	value T
	err   *APIError
}

// Ok wraps a successful payload
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failed outcome
func Fail[T any](err *APIError) Result[T] {
	return Result[T]{err: err}
}

// Failf builds a failed outcome from a bare message, used for the fixed
// per-operation transport fallbacks
func Failf[T any](message string) Result[T] {
	return Result[T]{err: &APIError{Message: message}}
}

// IsOk reports whether the operation succeeded
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the payload; zero value when the result is an error
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error; nil when the result is a success
func (r Result[T]) Err() *APIError {
	return r.err
}
