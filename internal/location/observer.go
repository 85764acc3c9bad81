package location

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/workers"
	"github.com/MKhiriev/go-pet-walker/models"
)

// Observer keeps the latest position reported by a Source.
type Observer struct {
	source Source
	worker workers.Worker

	mu      sync.RWMutex
	current models.Location
	known   bool

	ready     chan struct{}
	readyOnce sync.Once
}

// NewObserver creates an idle Observer polling source every interval.
func NewObserver(source Source, interval time.Duration, log *logger.Logger) *Observer {
	o := &Observer{source: source, ready: make(chan struct{})}
	o.worker = workers.NewPeriodic("location", interval, o.poll, log)
	return o
}

func (o *Observer) poll(ctx context.Context) error {
	loc, err := o.source.Locate(ctx)
	if err != nil {
		return err
	}

	o.mu.Lock()
	o.current = loc
	o.known = true
	o.mu.Unlock()

	o.readyOnce.Do(func() { close(o.ready) })
	return nil
}

// Start begins polling. It returns immediately.
func (o *Observer) Start(ctx context.Context) {
	o.worker.Start(ctx)
}

// Stop ends polling and waits for the poller to exit. The last fix stays
// available through Current.
func (o *Observer) Stop() {
	o.worker.Stop()
}

// Current returns the latest fix and whether one exists.
func (o *Observer) Current() (models.Location, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current, o.known
}

// First blocks until a fix exists or ctx is done.
func (o *Observer) First(ctx context.Context) (models.Location, error) {
	select {
	case <-o.ready:
		loc, _ := o.Current()
		return loc, nil
	case <-ctx.Done():
		return models.Location{}, ctx.Err()
	}
}
