// Package outcome provides Result[T, E], a closed two-variant value that is
// either Ok carrying a success of type T or Err carrying a failure of type E,
// together with combinators for transforming, chaining and consuming such
// values without exception-style control flow.
//
// Highlights:
// - Ok/Err/OkUnit/ErrUnit: construct Result[T, E]
// - From: adapt a Go (value, error) pair
// - Try: invoke a function and capture any panic as Err
// - Map/MapErr/MapOr/MapOrElse/AndThen: type-changing transforms (package level)
// - Inspect/InspectErr/Or/OrElse/And/AndThen: fluent combinators (methods)
// - Unwrap/UnwrapOr/UnwrapOrElse/Expect/UnwrapErr/ExpectErr: extraction
// - All/Partition: fold a batch of results
//
// Every Result carries an identity token and a creation time. Combinators
// that pass a value through untouched preserve both, so a no-op branch stays
// distinguishable from a fresh construction.
package outcome
