package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCanceled is the error a future settles with when Cancel is called
var ErrCanceled = errors.New("future canceled")

// Func is the producer signature accepted by FromFunc
type Func[T any] func() (T, error)

// Future is a cell that is settled at most once, with either a value or an
// error. The first settlement wins and later ones are silently ignored.
// Once settled it can be read any number of times, from any number of
// goroutines, and every read observes the same outcome.
type Future[T any] struct {
	settled uint32
	done    chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled manually via
// Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// NewWithContext creates an unsettled Future bound to ctx: when ctx ends
// before the future is settled, the future fails with the context's error.
func NewWithContext[T any](ctx context.Context) *Future[T] {
	f := New[T]()

	go func() {
		select {
		case <-ctx.Done():
			f.Fail(ctx.Err())
		case <-f.done:
		}
	}()

	return f
}

// FromFunc runs fn on a new goroutine and settles the returned Future with
// fn's outcome.
func FromFunc[T any](fn Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		v, err := fn()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()

	return f
}

// Complete settles the future with value. Ignored when already settled.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Fail settles the future with err. Ignored when already settled.
func (f *Future[T]) Fail(err error) {
	f.settle(*new(T), err)
}

// Cancel settles the future with ErrCanceled. Ignored when already settled.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) settle(value T, err error) {
	if atomic.CompareAndSwapUint32(&f.settled, 0, 1) {
		f.value = value
		f.err = err
		close(f.done)
	}
}

// Get returns the settled value and error, blocking until the future
// settles or ctx ends. When ctx ends first, the context's own error is
// returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}

// Done returns a channel that is closed once the future settles
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsCanceled reports whether err represents cancellation, either an explicit
// Cancel or a context ending
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
