package outcome

// All collects the success values of results in order. The first failure
// wins and passes through unchanged; an empty input yields Ok of an empty
// slice.
func All[T, E any](results ...Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))

	for _, r := range results {
		if !r.ok {
			return errFrom[[]T](r)
		}
		values = append(values, r.value)
	}

	return Ok[[]T, E](values)
}

// Partition splits a batch of results into its success and failure values
func Partition[T, E any](results []Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(results))
	errs := make([]E, 0, len(results))

	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
		} else {
			errs = append(errs, r.err)
		}
	}

	return values, errs
}
