package workers

import "context"

// Workers starts and stops a group of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Add appends w to the group.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
