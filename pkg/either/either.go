// Package either provides Either, a container which holds either a successful
// value or an error. It is the element type of traits.Single and of the
// observables split by pkg/observable/filter.
package either

// Either holds either a value of type T (success) or an error.
type Either[T any] struct {
	value T
	err   error
}

// Success returns an Either holding value.
func Success[T any](value T) Either[T] {
	return Either[T]{value: value}
}

// Error returns an Either holding err.
func Error[T any](err error) Either[T] {
	return Either[T]{err: err}
}

// ValueOrError returns the held value and error; exactly one of them is
// meaningful.
func (m Either[T]) ValueOrError() (T, error) {
	return m.value, m.err
}

// IsSuccess returns true if m holds a value.
func (m Either[T]) IsSuccess() bool {
	return m.err == nil
}

// IsError returns true if m holds an error.
func (m Either[T]) IsError() bool {
	return m.err != nil
}
