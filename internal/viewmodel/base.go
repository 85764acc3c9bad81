// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewmodel

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/async"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/paging"
	"github.com/MKhiriev/go-pet-walker/models"
)

var errNoDownloader = errors.New("downloads are not configured")

// Options carries the settings shared by every view model.
type Options struct {
	// PageSize is the page size of paged lists; paging.DefaultPageSize
	// when not positive.
	PageSize int

	// Logger defaults to logger.Nop.
	Logger *logger.Logger

	// Now defaults to time.Now. Forms validate dates against it.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = paging.DefaultPageSize
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Downloader saves an attachment locally.
type Downloader interface {
	QueryDownload(ctx context.Context, reference, displayName string) error
}

// Op tracks a user-triggered operation such as a submit. The zero Op has
// not been started.
type Op[T any] struct {
	Started bool
	Result  async.Result[T]
}

// InFlight reports whether the operation is running.
func (o Op[T]) InFlight() bool {
	return o.Started && o.Result.IsLoading()
}

// Done reports whether the operation finished successfully.
func (o Op[T]) Done() bool {
	return o.Started && o.Result.IsSucceeded()
}

func startOp[T any]() Op[T] {
	return Op[T]{Started: true, Result: async.Loading[T]()}
}

func finishOp[T any](v T, err error) Op[T] {
	return Op[T]{Started: true, Result: async.FromCall(v, err)}
}

// base is embedded by every view model.
type base[S any] struct {
	name   string
	scope  *scope
	state  *holder[S]
	opts   Options
	logger *logger.Logger

	// onClose runs before the scope is cancelled.
	onClose []func()
}

func newBase[S any](ctx context.Context, name string, initial S, opts Options) base[S] {
	opts = opts.withDefaults()
	return base[S]{
		name:   name,
		scope:  newScope(ctx),
		state:  newHolder(initial),
		opts:   opts,
		logger: opts.Logger.Named(name),
	}
}

// State returns the current state.
func (b *base[S]) State() S {
	return b.state.get()
}

// Subscribe registers fn to be called after every state change and returns
// a function removing it. fn must not call Handle synchronously.
func (b *base[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	return b.state.subscribe(fn)
}

// Close cancels all outstanding work and waits for it to finish.
func (b *base[S]) Close() {
	for _, fn := range b.onClose {
		fn()
	}
	b.scope.close()
}

// logFailure records a failed background call unless the view model is
// being closed.
func (b *base[S]) logFailure(ctx context.Context, fn string, err error) {
	if err == nil || ctx.Err() != nil || errors.Is(err, paging.ErrSuperseded) {
		return
	}
	b.logger.Debug().Err(err).
		Str("func", fn).
		Stringer("kind", models.KindOf(err)).
		Msg("call failed")
}

// download runs d.QueryDownload in the background and records its progress
// with set. A missing Downloader fails with models.Unknown.
func (b *base[S]) download(d Downloader, ev DownloadAttachment, set func(*S, Op[string])) {
	b.state.update(func(s *S) { set(s, startOp[string]()) })
	b.scope.launch(func(ctx context.Context) {
		var err error
		if d == nil {
			err = errNoDownloader
		} else {
			err = d.QueryDownload(ctx, ev.Reference, ev.Name)
		}
		if ctx.Err() != nil {
			return
		}
		b.logFailure(ctx, "download", err)
		b.state.update(func(s *S) { set(s, finishOp(ev.Name, err)) })
	})
}

// fetch sets the field written by set to Loading, then to the outcome of
// call. The previous payload is dropped while loading. fn names the field:
// only the latest fetch for fn writes its outcome.
func fetch[S, T any](b *base[S], fn string, call func(ctx context.Context) (T, error), set func(*S, async.Result[T])) {
	ticket := b.state.claim(fn, func(s *S) { set(s, async.Loading[T]()) })
	b.scope.launch(func(ctx context.Context) {
		v, err := call(ctx)
		if ctx.Err() != nil {
			return
		}
		if b.state.settle(fn, ticket, func(s *S) { set(s, async.FromCall(v, err)) }) {
			b.logFailure(ctx, fn, err)
		}
	})
}
