// Package result provides an explicit success-or-failure container for
// pipelines that chain several fallible steps.
//
// Result is a value: either Ok(v) or Err(err). Map and AndThen are
// package-level functions because Go methods cannot introduce new type
// parameters. A failed Result passes through every combinator untouched, so a
// chain only needs to be inspected once, at the end:
//
//	r := result.AndThen(result.From(parse(raw)), validate)
//	v, err := r.Unwrap()
//
// Async is the deferred counterpart: it wraps a computation that has not run
// yet (typically a repository call) and exposes the same combinators.
package result

import "fmt"

// Result holds either a value of type T or a non-nil error.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result. A nil err is a programming error and panics.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return Result[T]{err: err}
}

// From lifts a conventional (value, error) pair into a Result.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: v}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the held value, or the zero value of T when r failed.
func (r Result[T]) Value() T { return r.value }

// Error returns the held error, or nil when r succeeded.
func (r Result[T]) Error() error { return r.err }

// Unwrap converts r back into a (value, error) pair.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// MustGet returns the value and panics if r failed. Intended for tests.
func (r Result[T]) MustGet() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: MustGet on failed result: %v", r.err))
	}
	return r.value
}

// Match calls onOk or onErr depending on the state of r.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.err != nil {
		onErr(r.err)
		return
	}
	onOk(r.value)
}

// Map applies f to the value of a successful Result.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// AndThen chains a fallible step onto a successful Result.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// MapErr rewrites the error of a failed Result.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}
