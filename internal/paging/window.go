// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paging

import "fmt"

// Window is the inclusive, 1-indexed range of pages materialised in the
// merged list. First <= Last always holds.
type Window struct {
	First int
	Last  int
}

// InitialWindow is the window of a cache that has not loaded anything yet.
func InitialWindow() Window {
	return Window{First: 1, Last: 1}
}

// Contains reports whether page n is inside w.
func (w Window) Contains(n int) bool {
	return n >= w.First && n <= w.Last
}

func (w Window) String() string {
	return fmt.Sprintf("(%d,%d)", w.First, w.Last)
}

// Direction tells which end of the list a request is extending, so a UI
// can place its loading indicator. It never affects merge semantics.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
	DirectionReplace
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionReplace:
		return "replace"
	default:
		return "none"
	}
}

type mergeMode int

const (
	mergeReplace mergeMode = iota
	mergePrepend
	mergeAppend
)

// plan is the outcome of the window-merge policy for one request.
type plan struct {
	window    Window
	mode      mergeMode
	pages     []int
	direction Direction
}

// planRequest applies the window-merge policy to a request for page n
// given the current window.
//
//	nothing loaded   -> (n, n)      replace
//	n <  f-1         -> (n, n+1)    replace, pages n and n+1
//	n == f-1         -> (n, f)      prepend
//	n == l+1         -> (l, n)      append
//	n >  l+1         -> (n-1, n)    replace, pages n-1 and n
//	f <= n <= l      -> (n, n)      replace
func planRequest(current Window, loaded bool, n int) plan {
	if n < 1 {
		n = 1
	}

	f, l := current.First, current.Last
	switch {
	case !loaded:
		return plan{window: Window{n, n}, mode: mergeReplace, pages: []int{n}, direction: DirectionReplace}
	case n < f-1:
		return plan{window: Window{n, n + 1}, mode: mergeReplace, pages: []int{n, n + 1}, direction: DirectionBackward}
	case n == f-1:
		return plan{window: Window{n, f}, mode: mergePrepend, pages: []int{n}, direction: DirectionBackward}
	case n == l+1:
		return plan{window: Window{l, n}, mode: mergeAppend, pages: []int{n}, direction: DirectionForward}
	case n > l+1:
		return plan{window: Window{n - 1, n}, mode: mergeReplace, pages: []int{n - 1, n}, direction: DirectionForward}
	default:
		return plan{window: Window{n, n}, mode: mergeReplace, pages: []int{n}, direction: DirectionReplace}
	}
}

// merge builds the new list for p. It never aliases old, so snapshots
// handed out earlier stay valid.
func merge[T any](old []T, oldWindow Window, p plan, fetched [][]T, pageSize int) []T {
	switch p.mode {
	case mergePrepend:
		// keep only the old first page on the far side
		keep := old[:min(len(old), pageSize)]
		out := make([]T, 0, len(fetched[0])+len(keep))
		out = append(out, fetched[0]...)
		return append(out, keep...)

	case mergeAppend:
		// keep only the old last page on the far side
		start := min((oldWindow.Last-oldWindow.First)*pageSize, len(old))
		keep := old[start:]
		out := make([]T, 0, len(keep)+len(fetched[0]))
		out = append(out, keep...)
		return append(out, fetched[0]...)

	default:
		size := 0
		for _, page := range fetched {
			size += len(page)
		}
		out := make([]T, 0, size)
		for _, page := range fetched {
			out = append(out, page...)
		}
		return out
	}
}
