package cda

import (
	"context"
)

// Executor runs a task on a target execution context: a goroutine pool, an
// event loop, a test-controlled queue. A nil Executor means "deliver on the
// goroutine that produced the result".
type Executor func(task func())

// Callback receives the terminal result of an Operation: exactly one of
// OnSuccess or OnFailure is invoked per subscription.
type Callback[T any] interface {
	OnSuccess(value T)
	OnFailure(err error)
}

// CallbackFuncs adapts plain functions to the Callback interface. Either
// field may be nil, in which case that outcome is dropped.
type CallbackFuncs[T any] struct {
	Success func(value T)
	Failure func(err error)
}

// OnSuccess implements Callback.
func (c CallbackFuncs[T]) OnSuccess(value T) {
	if c.Success != nil {
		c.Success(value)
	}
}

// OnFailure implements Callback.
func (c CallbackFuncs[T]) OnFailure(err error) {
	if c.Failure != nil {
		c.Failure(err)
	}
}

// Operation is a cold, single-value asynchronous computation. Nothing runs
// until Get or Subscribe is called, and every Get or Subscribe triggers an
// independent execution — awaiting the same operation twice performs the
// work twice. Deduplication of concurrent cache fills happens below this
// layer, in the resolver.
//
// An operation holds no resources beyond one delivery; discarding it before
// completion only requires abandoning the pending Get via its context.
type Operation[T any] struct {
	run func(ctx context.Context) (T, error)
}

// NewOperation wraps run into a cold operation.
func NewOperation[T any](run func(ctx context.Context) (T, error)) *Operation[T] {
	return &Operation[T]{run: run}
}

// Get executes the operation on the calling goroutine and blocks until the
// value or error is available.
func (o *Operation[T]) Get(ctx context.Context) (T, error) {
	return o.run(ctx)
}

// Subscribe starts the operation on a new goroutine and delivers the result
// to cb on exec. When exec is nil the callback runs on the worker goroutine.
// Subscribing twice triggers two independent executions.
func (o *Operation[T]) Subscribe(ctx context.Context, cb Callback[T], exec Executor) {
	if cb == nil {
		panic(ErrNilCallback)
	}

	if exec == nil {
		exec = func(task func()) { task() }
	}

	go func() {
		value, err := o.run(ctx)
		if err != nil {
			exec(func() { cb.OnFailure(err) })

			return
		}

		exec(func() { cb.OnSuccess(value) })
	}()
}

// Map derives an operation that applies fn to the source's value. The
// derived operation is still cold; each await runs the full chain.
func Map[T, U any](op *Operation[T], fn func(T) (U, error)) *Operation[U] {
	return NewOperation(func(ctx context.Context) (U, error) {
		var zero U

		value, err := op.Get(ctx)
		if err != nil {
			return zero, err
		}

		return fn(value)
	})
}
