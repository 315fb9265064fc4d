package outcome

func Map[T, E, U any](input Result[T, E], mapper func(value T) U) Result[U, E] {
	if input.ok {
		return Ok[U, E](mapper(input.value))
	}
	return errFrom[U](input)
}

func MapErr[T, E, F any](input Result[T, E], mapper func(err E) F) Result[T, F] {
	if input.ok {
		return okFrom[F](input)
	}
	return Err[T, F](mapper(input.err))
}

func MapOr[T, E, U any](input Result[T, E], def U, mapper func(value T) U) U {
	if input.ok {
		return mapper(input.value)
	}
	return def
}

func MapOrElse[T, E, U any](input Result[T, E],
	errMapper func(err E) U, mapper func(value T) U) U {

	if input.ok {
		return mapper(input.value)
	}
	return errMapper(input.err)
}

func AndThen[T, E, U any](input Result[T, E],
	op func(value T) Result[U, E]) Result[U, E] {

	if input.ok {
		return op(input.value)
	}
	return errFrom[U](input)
}
