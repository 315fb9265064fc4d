// Package future provides a write-once cell representing an asynchronous
// computation, plus adapters that fold its settlement into outcome.Result
// values. A Future can be handed to many readers; unlike a channel, every
// reader observes the same settled value.
//
// Highlights:
// - New/NewWithContext/FromFunc: create a Future[T]
// - Complete/Fail/Cancel: settle it (first settlement wins)
// - Get/Done: wait for settlement
// - Settle: turn completion or failure into a Future of outcome.Result
// - Resolve/ResolveAll: block and collect outcomes in Result form
package future
