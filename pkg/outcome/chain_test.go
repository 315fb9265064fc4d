package outcome

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	seen := 0
	r := Ok[int, error](42)
	out := r.Inspect(func(v int) { seen = v })

	require.Equal(42, seen)
	require.Equal(r.Id(), out.Id())

	called := false
	e := Err[int](errors.New("boom"))
	out = e.Inspect(func(int) { called = true })

	require.False(called)
	require.Equal(e.Id(), out.Id())
}

func TestInspectErr(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	boom := errors.New("boom")
	var seen error
	e := Err[int](boom)
	out := e.InspectErr(func(err error) { seen = err })

	require.ErrorIs(seen, boom)
	require.Equal(e.Id(), out.Id())

	called := false
	r := Ok[int, error](1)
	out = r.InspectErr(func(error) { called = true })

	require.False(called)
	require.Equal(r.Id(), out.Id())
}

func TestOr(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	a := Ok[int, error](1)
	b := Ok[int, error](2)

	keep := a.Or(b)
	require.Equal(1, keep.Value())
	require.Equal(a.Id(), keep.Id())

	e := Err[int](errors.New("boom"))
	swap := e.Or(b)
	require.Equal(2, swap.Value())
	require.Equal(b.Id(), swap.Id())
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	called := false
	r := Ok[int, error](1).OrElse(func(error) Result[int, error] {
		called = true
		return Ok[int, error](0)
	})

	require.False(called)
	require.Equal(1, r.Value())

	recovered := Err[int](errors.New("boom")).OrElse(func(err error) Result[int, error] {
		return Ok[int, error](len(err.Error()))
	})

	require.True(recovered.IsOk())
	require.Equal(4, recovered.Value())
}

func TestAnd(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	a := Ok[int, error](1)
	b := Ok[int, error](2)

	require.Equal(b.Id(), a.And(b).Id())

	e := Err[int](errors.New("boom"))
	require.Equal(e.Id(), e.And(b).Id())
}

func TestAndThen(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	double := func(n int) Result[int, error] { return Ok[int, error](n * 2) }

	r := Ok[int, error](21).AndThen(double)
	require.Equal(42, r.Value())

	called := false
	e := Err[int](errors.New("boom"))
	out := e.AndThen(func(int) Result[int, error] {
		called = true
		return Ok[int, error](0)
	})

	require.False(called)
	require.Equal(e.Id(), out.Id())
}

func TestUnwrap(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Equal(42, Ok[int, error](42).Unwrap())

	e := Err[int](errors.New("boom"))
	require.PanicsWithValue("attempted to unwrap an Err value: boom", func() {
		e.Unwrap()
	})
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Equal(42, Ok[int, error](42).UnwrapOr(-1))
	require.Equal(-1, Err[int](errors.New("boom")).UnwrapOr(-1))
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Equal(42, Ok[int, error](42).UnwrapOrElse(func(error) int { return -1 }))

	fallback := Err[int](errors.New("boom")).UnwrapOrElse(func(err error) int {
		return len(err.Error())
	})
	require.Equal(4, fallback)
}

func TestExpect(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Equal(42, Ok[int, error](42).Expect("should hold a value"))

	e := Err[int](errors.New("boom"))
	require.PanicsWithValue("config must be parseable", func() {
		e.Expect("config must be parseable")
	})
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	boom := errors.New("boom")
	require.ErrorIs(Err[int](boom).UnwrapErr(), boom)

	r := Ok[int, error](42)
	require.PanicsWithValue(42, func() {
		r.UnwrapErr()
	})
}

func TestExpectErr(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	boom := errors.New("boom")
	require.ErrorIs(Err[int](boom).ExpectErr("should have failed"), boom)

	r := Ok[int, error](7)
	require.PanicsWithValue("should have failed: 7", func() {
		r.ExpectErr("should have failed")
	})
}
