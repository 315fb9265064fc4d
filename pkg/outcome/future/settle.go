package future

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Settle folds f's eventual settlement into a value: the returned future
// completes with Ok of the value when f completes, and with Err of the
// error when f fails. It settles exactly when f settles, preserves the
// failure reason untouched, and never fails itself.
func Settle[T any](f *Future[T]) *Future[outcome.Result[T, error]] {
	s := New[outcome.Result[T, error]]()

	go func() {
		<-f.done

		if f.err != nil {
			s.Complete(outcome.Err[T, error](f.err))
			return
		}
		s.Complete(outcome.Ok[T, error](f.value))
	}()

	return s
}

// Resolve blocks until f settles and folds the outcome into a Result.
// When ctx ends first, the result is Err of the context's error.
func Resolve[T any](ctx context.Context, f *Future[T]) outcome.Result[T, error] {
	return outcome.From(f.Get(ctx))
}

// ResolveAll blocks until every future settles and returns a Result for each
// one at the matching index. When ctx ends, it aborts with the context's
// error instead.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]outcome.Result[T, error], error) {
	res := make([]outcome.Result[T, error], 0, len(fs))

	for _, f := range fs {
		res = append(res, Resolve(ctx, f))
		// ctx checked after the Get so the last settlement is not lost to a cancel race
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}
