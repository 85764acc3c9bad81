package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/tui"
)

// App is the terminal client.
type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp creates the client around ui.
func NewApp(ui UI, log *logger.Logger) *App {
	return &App{ui: ui, logger: log}
}

// Run implements Client. Quitting the UI or cancelling ctx ends it
// without an error.
func (a *App) Run(ctx context.Context) error {
	for {
		logout, err := a.ui.Run(ctx)
		switch {
		case errors.Is(err, tui.ErrUserQuit), errors.Is(err, context.Canceled):
			a.logger.Info().Str("func", "App.Run").Msg("client stopped")
			return nil
		case err != nil:
			return fmt.Errorf("ui session: %w", err)
		case !logout:
			return nil
		}
		a.logger.Info().Str("func", "App.Run").Msg("logged out, starting new session")
	}
}
