// Package paging implements the windowed page cache shared by every paged
// list of the client (assigned pets, channel messages, post comments,
// featured walkers, recruitments, medical records, reviews).
//
// A [Cache] holds one continuous in-memory list stitched from independently
// fetched pages of a remote collection, together with the inclusive
// [Window] of page indices the list covers. Callers only ask for a page
// number; the cache decides whether to prepend, append or replace, trims
// the far side so that at most about two pages are held, and guarantees
// that only the latest request may change its state.
//
// Merges are positional: a page is assumed to be exactly PageSize items.
// If the remote collection shifts between two fetches, items at the stitch
// boundary may be duplicated or skipped.
package paging
