package viewmodel

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/paging"
	"github.com/MKhiriev/go-pet-walker/models"
)

// pager binds a paging.Cache to one field of a view model state.
type pager[T any] struct {
	cache *paging.Cache[T]
	scope *scope
	fail  func(ctx context.Context, fn string, err error)
}

// newPager creates a cache whose every change is written into the state
// with set.
func newPager[S, T any](b *base[S], fetch func(ctx context.Context, page models.PageRequest) (models.Paged[T], error), set func(*S, paging.State[T])) *pager[T] {
	cache := paging.NewCache(
		func(ctx context.Context, page, pageSize int) (models.Paged[T], error) {
			return fetch(ctx, models.PageRequest{Page: page, PageSize: pageSize})
		},
		paging.WithPageSize[T](b.opts.PageSize),
		paging.WithLogger[T](b.logger),
		paging.WithOnChange(func(st paging.State[T]) {
			b.state.update(func(s *S) { set(s, st) })
		}),
	)
	b.onClose = append(b.onClose, cache.Cancel)
	return &pager[T]{cache: cache, scope: b.scope, fail: b.logFailure}
}

// snapshot is the initial list state.
func (p *pager[T]) snapshot() paging.State[T] {
	return p.cache.Snapshot()
}

// load requests page n in the background. The request is claimed before
// load returns, so a later load supersedes it.
func (p *pager[T]) load(n int) {
	req := p.cache.Begin(p.scope.ctx, n)
	launched := p.scope.launch(func(ctx context.Context) {
		p.fail(ctx, "pager.load", req.Run())
	})
	if !launched {
		p.cache.Cancel()
	}
}

// refresh reloads from the first page, keeping the current items visible
// until the response arrives.
func (p *pager[T]) refresh() {
	p.load(1)
}

// reset drops the list, e.g. when a filter changes, and loads page 1.
func (p *pager[T]) reset() {
	p.cache.Reset()
	p.load(1)
}
