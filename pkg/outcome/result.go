package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is either Ok carrying a value of type T or Err carrying a failure
// of type E, never both and never neither. The zero value behaves as Err
// with E's zero value.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

// Unit is the payload of results that carry no value.
type Unit struct{}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func OkUnit[E any]() Result[Unit, E] {
	return Ok[Unit, E](Unit{})
}

func ErrUnit[T any]() Result[T, Unit] {
	return Err[T, Unit](Unit{})
}

func errFrom[U, T, E any](from Result[T, E]) Result[U, E] {
	return Result[U, E]{
		err:       from.err,
		ok:        from.ok,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func okFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		value:     from.value,
		ok:        from.ok,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) Value() T {
	return r.value
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) Unpack() (T, E) {
	return r.value, r.err
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
