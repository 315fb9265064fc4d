package outcome

// Try invokes fn exactly once and captures any panic as the failure variant.
// The recovered payload is kept verbatim, whatever its dynamic type. Aborts
// that recover cannot observe are not intercepted.
func Try[T any](fn func() T) (res Result[T, any]) {
	defer func() {
		if p := recover(); p != nil {
			res = Err[T, any](p)
		}
	}()

	return Ok[T, any](fn())
}

// From adapts a Go (value, error) pair: nil error gives Ok, anything else Err
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}
