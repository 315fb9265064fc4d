package outcome

import "fmt"

// Inspect calls f with the success value, leaving the result untouched
func (r Result[T, E]) Inspect(f func(value T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the failure value, leaving the result untouched
func (r Result[T, E]) InspectErr(f func(err E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Or keeps the result when Ok, otherwise returns alternative
func (r Result[T, E]) Or(alternative Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return alternative
}

// OrElse keeps the result when Ok, otherwise returns op applied to the failure value
func (r Result[T, E]) OrElse(op func(err E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return op(r.err)
}

// And returns required when Ok, otherwise keeps the failure
func (r Result[T, E]) And(required Result[T, E]) Result[T, E] {
	if r.ok {
		return required
	}
	return r
}

// AndThen returns op applied to the success value, otherwise keeps the failure.
// The type-changing form is the package-level AndThen function.
func (r Result[T, E]) AndThen(op func(value T) Result[T, E]) Result[T, E] {
	if r.ok {
		return op(r.value)
	}
	return r
}

// Unwrap returns the success value and panics on Err
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("attempted to unwrap an Err value: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the success value, or def on Err
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or op applied to the failure value
func (r Result[T, E]) UnwrapOrElse(op func(err E) T) T {
	if r.ok {
		return r.value
	}
	return op(r.err)
}

// Expect returns the success value and panics with exactly msg on Err
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(msg)
	}
	return r.value
}

// UnwrapErr returns the failure value and panics on Ok, with the success
// value itself as the panic payload
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(r.value)
	}
	return r.err
}

// ExpectErr returns the failure value and panics on Ok with msg and the
// success value
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.value))
	}
	return r.err
}
