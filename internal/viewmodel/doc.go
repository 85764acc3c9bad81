// Package viewmodel holds the per-screen state containers of the client.
//
// Every view model is explicitly constructed with a parent context and
// explicitly destroyed with Close, which cancels its background work and
// waits for it to finish. User actions are delivered as values of the view
// model's closed event type through a single Handle method. State is kept
// in one holder: updates are atomic read-modify-write transitions, and
// subscribers are called synchronously, in order, after each update.
//
// Paged lists are backed by [paging.Cache]; the cache state is mirrored
// into the view model state on every change. Remote results are exposed as
// [async.Result] values.
package viewmodel
