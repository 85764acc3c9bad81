// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paging

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pet-walker/internal/async"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/models"
	"golang.org/x/sync/errgroup"
)

// DefaultPageSize is used when no page size option is given.
const DefaultPageSize = 15

// ErrSuperseded is returned by [Cache.RequestPage] when a newer request
// (or a Reset) took over before the fetch completed. The superseded
// request has not changed the cache.
var ErrSuperseded = errors.New("page request superseded")

// Fetcher loads one page of the remote collection. It must be idempotent
// for a given (page, pageSize) and should honour ctx cancellation.
type Fetcher[T any] func(ctx context.Context, page, pageSize int) (models.Paged[T], error)

// State is a snapshot of the cache.
type State[T any] struct {
	// Items is the merged list for Window. Callers must not modify it.
	Items []T

	// Window is the page range covered by Items.
	Window Window

	// Loaded is false until the first successful fetch. A not-loaded cache
	// with an empty list means "nothing loaded yet", not "page 1 is empty".
	Loaded bool

	// TotalPages is the last server-reported page count.
	TotalPages int

	// MaxPageReached is true when Window.Last reached TotalPages.
	MaxPageReached bool

	// Direction is the direction of the most recent request.
	Direction Direction

	// Status is the outcome of the most recent request; on success it
	// carries the requested page number.
	Status async.Result[int]
}

// IsLoadingForward reports whether a forward extension is in flight.
func (s State[T]) IsLoadingForward() bool {
	return s.Status.IsLoading() && s.Direction == DirectionForward
}

// IsLoadingBackward reports whether a backward extension is in flight.
func (s State[T]) IsLoadingBackward() bool {
	return s.Status.IsLoading() && s.Direction == DirectionBackward
}

// Option configures a Cache.
type Option[T any] func(*Cache[T])

// WithPageSize sets the page size requested from the fetcher.
func WithPageSize[T any](size int) Option[T] {
	return func(c *Cache[T]) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithOnChange registers a callback invoked after every state change. It
// runs while the cache lock is held and must not call back into the cache.
func WithOnChange[T any](fn func(State[T])) Option[T] {
	return func(c *Cache[T]) {
		c.onChange = fn
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger[T any](log *logger.Logger) Option[T] {
	return func(c *Cache[T]) {
		if log != nil {
			c.logger = log
		}
	}
}

// Cache is the windowed page cache. It is safe for concurrent use, but at
// most one request is effective at a time: starting a request cancels the
// one in flight.
type Cache[T any] struct {
	fetch    Fetcher[T]
	pageSize int
	onChange func(State[T])
	logger   *logger.Logger

	mu     sync.Mutex
	state  State[T]
	gen    uint64
	cancel context.CancelFunc

	// Status and Direction from before the request in flight.
	idleStatus    async.Result[int]
	idleDirection Direction
}

// NewCache returns an empty cache backed by fetch.
func NewCache[T any](fetch Fetcher[T], opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{
		fetch:    fetch,
		pageSize: DefaultPageSize,
		logger:   logger.Nop(),
		state:    State[T]{Window: InitialWindow()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageSize returns the configured page size.
func (c *Cache[T]) PageSize() int {
	return c.pageSize
}

// Snapshot returns the current state.
func (c *Cache[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// RequestPage fetches page n (coerced to at least 1) and merges it into the
// list according to the window policy. It blocks until the fetch finishes.
//
// If the fetch fails, the window and the list are left untouched, Status
// becomes Failed and the error is returned; calling RequestPage again with
// the same n retries. If a newer request starts meanwhile, this call returns
// [ErrSuperseded] without touching the state.
func (c *Cache[T]) RequestPage(ctx context.Context, n int) error {
	return c.Begin(ctx, n).Run()
}

// Request is a page request that already owns the cache: any request begun
// after it supersedes it, whichever fetch finishes first.
type Request[T any] struct {
	c         *Cache[T]
	ctx       context.Context
	cancel    context.CancelFunc
	gen       uint64
	page      int
	plan      plan
	oldWindow Window
}

// Begin claims the cache for page n and marks it loading without fetching.
// The fetch happens in [Request.Run], typically on another goroutine, so
// callers that start requests in order get the last one applied.
func (c *Cache[T]) Begin(ctx context.Context, n int) *Request[T] {
	if n < 1 {
		n = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	} else {
		c.idleStatus = c.state.Status
		c.idleDirection = c.state.Direction
	}
	c.gen++
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	p := planRequest(c.state.Window, c.state.Loaded, n)
	r := &Request[T]{
		c:         c,
		ctx:       reqCtx,
		cancel:    cancel,
		gen:       c.gen,
		page:      n,
		plan:      p,
		oldWindow: c.state.Window,
	}
	c.state.Direction = p.direction
	c.state.Status = async.Loading[int]()
	c.notifyLocked()

	return r
}

// Run fetches the pages planned by Begin and applies them unless a newer
// request took over. It has the same results as [Cache.RequestPage].
func (r *Request[T]) Run() error {
	c, n, p := r.c, r.page, r.plan
	defer r.cancel()

	c.logger.Debug().
		Str("func", "Cache.RequestPage").
		Int("page", n).
		Stringer("window", r.oldWindow).
		Stringer("next_window", p.window).
		Stringer("direction", p.direction).
		Msg("requesting page")

	fetched, totalPages, err := c.fetchPages(r.ctx, p.pages)

	c.mu.Lock()
	defer c.mu.Unlock()

	if r.gen != c.gen {
		return ErrSuperseded
	}
	c.cancel = nil

	if err != nil {
		if r.ctx.Err() != nil {
			// owner went away; the request never happened as far as the state goes
			c.restoreLocked()
			return r.ctx.Err()
		}
		c.state.Status = async.Failed[int](models.KindOf(err))
		c.notifyLocked()
		c.logger.Debug().Err(err).
			Str("func", "Cache.RequestPage").
			Int("page", n).
			Msg("page request failed")
		return fmt.Errorf("request page %d: %w", n, err)
	}

	c.state.Items = merge(c.state.Items, c.state.Window, p, fetched, c.pageSize)
	c.state.Window = p.window
	c.state.Loaded = true
	c.state.TotalPages = totalPages
	c.state.MaxPageReached = p.window.Last >= totalPages
	c.state.Status = async.Succeeded(n)
	c.notifyLocked()

	return nil
}

// Reset cancels any request in flight and returns the cache to its initial
// state, e.g. when a filter changes.
func (c *Cache[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	c.state = State[T]{Window: InitialWindow()}
	c.notifyLocked()
}

// Cancel aborts the request in flight, if any, leaving the state as it was
// before that request.
func (c *Cache[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel == nil {
		return
	}
	c.cancel()
	c.cancel = nil
	c.gen++
	c.restoreLocked()
}

func (c *Cache[T]) restoreLocked() {
	c.state.Status = c.idleStatus
	c.state.Direction = c.idleDirection
	c.notifyLocked()
}

func (c *Cache[T]) fetchPages(ctx context.Context, pages []int) ([][]T, int, error) {
	if len(pages) == 1 {
		res, err := c.fetch(ctx, pages[0], c.pageSize)
		if err != nil {
			return nil, 0, err
		}
		return [][]T{res.Result}, res.TotalPages, nil
	}

	results := make([]models.Paged[T], len(pages))
	g, gctx := errgroup.WithContext(ctx)
	for i, page := range pages {
		g.Go(func() error {
			res, err := c.fetch(gctx, page, c.pageSize)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	fetched := make([][]T, len(results))
	for i, res := range results {
		fetched[i] = res.Result
	}
	// the later page carries the freshest page count
	return fetched, results[len(results)-1].TotalPages, nil
}

func (c *Cache[T]) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}
