package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/tui"
	"github.com/stretchr/testify/assert"
)

type sessionResult struct {
	logout bool
	err    error
}

// scriptedUI replays results, one per Run call.
type scriptedUI struct {
	results []sessionResult
	runs    int
}

func (u *scriptedUI) Run(context.Context) (bool, error) {
	r := u.results[u.runs]
	u.runs++
	return r.logout, r.err
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		results  []sessionResult
		wantErr  error
		wantRuns int
	}{
		{name: "quit", results: []sessionResult{{err: tui.ErrUserQuit}}, wantRuns: 1},
		{name: "logout then quit", results: []sessionResult{{logout: true}, {logout: true}, {err: tui.ErrUserQuit}}, wantRuns: 3},
		{name: "cancelled", results: []sessionResult{{err: context.Canceled}}, wantRuns: 1},
		{name: "plain exit", results: []sessionResult{{}}, wantRuns: 1},
		{name: "failure", results: []sessionResult{{logout: true}, {err: boom}}, wantErr: boom, wantRuns: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &scriptedUI{results: tt.results}
			err := NewApp(ui, logger.Nop()).Run(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantRuns, ui.runs)
		})
	}
}
