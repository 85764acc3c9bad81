// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingWorker is a test Worker that records start/stop order.
type recordingWorker struct {
	id    int
	order *[]string
}

func (r *recordingWorker) Start(context.Context) {
	*r.order = append(*r.order, "start", string(rune('0'+r.id)))
}

func (r *recordingWorker) Stop() {
	*r.order = append(*r.order, "stop", string(rune('0'+r.id)))
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var order []string
	ws := NewWorkers(&recordingWorker{id: 1, order: &order})
	ws.Add(&recordingWorker{id: 2, order: &order})

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}, order)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}
	ws.Start(context.Background())
	ws.Stop()
}

func TestPeriodic_RunsImmediatelyAndRepeats(t *testing.T) {
	var runs atomic.Int32
	p := NewPeriodic("test", 5*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	}, nil)

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	p.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after Stop")
}

func TestPeriodic_ErrorsDoNotStopLoop(t *testing.T) {
	var runs atomic.Int32
	p := NewPeriodic("failing", 5*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return errors.New("boom")
	}, nil)

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
	p.Stop()
}

func TestPeriodic_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPeriodic("ctx", time.Hour, func(context.Context) error { return nil }, nil)

	p.Start(ctx)
	cancel()
	p.Stop()
}

func TestPeriodic_RestartAndDoubleStop(t *testing.T) {
	var runs atomic.Int32
	p := NewPeriodic("restart", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	}, nil)

	p.Start(context.Background())
	p.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, time.Millisecond)
	p.Stop()
	p.Stop()
}

func TestNewPeriodic_DefaultInterval(t *testing.T) {
	p := NewPeriodic("d", 0, func(context.Context) error { return nil }, nil).(*periodic)
	assert.Equal(t, DefaultInterval, p.interval)
}
