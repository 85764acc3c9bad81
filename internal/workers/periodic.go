package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
)

// DefaultInterval is used when a Periodic is created with a non-positive
// interval.
const DefaultInterval = 30 * time.Second

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

type periodic struct {
	name     string
	task     Task
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodic creates a Worker that runs task immediately on Start and then
// every interval. Task errors are logged and do not stop the worker.
func NewPeriodic(name string, interval time.Duration, task Task, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &periodic{name: name, task: task, interval: interval, logger: log}
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that runs the task until ctx is cancelled or Stop is
// called.
func (p *periodic) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.run(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.run(jobCtx)
			}
		}
	}()
}

func (p *periodic) run(ctx context.Context) {
	if err := p.task(ctx); err != nil && ctx.Err() == nil {
		p.logger.Err(err).
			Str("func", "periodic.run").
			Str("worker", p.name).
			Msg("periodic task failed")
	}
}

// Stop implements Worker. It cancels the loop and blocks until the
// goroutine has exited. Safe to call when the worker is not running.
func (p *periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
