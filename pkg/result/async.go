package result

import "context"

// Async is a pending computation producing a Result. Nothing runs until
// Await is called; combinators only compose the pending steps, so a chain
// built from several Async values executes strictly in order.
type Async[T any] struct {
	run func(ctx context.Context) Result[T]
}

// Defer wraps a blocking (value, error) function, usually a repository call.
func Defer[T any](fn func(ctx context.Context) (T, error)) Async[T] {
	return Async[T]{run: func(ctx context.Context) Result[T] {
		return From(fn(ctx))
	}}
}

// Lift turns an already-computed Result into an Async.
func Lift[T any](r Result[T]) Async[T] {
	return Async[T]{run: func(context.Context) Result[T] { return r }}
}

// OkAsync is Lift(Ok(v)).
func OkAsync[T any](v T) Async[T] {
	return Lift(Ok(v))
}

// ErrAsync is Lift(Err(err)).
func ErrAsync[T any](err error) Async[T] {
	return Lift(Err[T](err))
}

// Await runs the pending computation. ctx is handed to each step as is;
// reporting cancellation is left to the steps that block.
func (a Async[T]) Await(ctx context.Context) Result[T] {
	if a.run == nil {
		var zero T
		return Ok(zero)
	}
	return a.run(ctx)
}

// MapAsync applies f to the eventual value of a.
func MapAsync[T, U any](a Async[T], f func(T) U) Async[U] {
	return Async[U]{run: func(ctx context.Context) Result[U] {
		return Map(a.Await(ctx), f)
	}}
}

// AndThenAsync chains a pending step that depends on the eventual value of a.
// f is not called when a fails.
func AndThenAsync[T, U any](a Async[T], f func(T) Async[U]) Async[U] {
	return Async[U]{run: func(ctx context.Context) Result[U] {
		r := a.Await(ctx)
		if r.err != nil {
			return Result[U]{err: r.err}
		}
		return f(r.value).Await(ctx)
	}}
}

// MapErrAsync rewrites the eventual error of a.
func MapErrAsync[T any](a Async[T], f func(error) error) Async[T] {
	return Async[T]{run: func(ctx context.Context) Result[T] {
		return MapErr(a.Await(ctx), f)
	}}
}
