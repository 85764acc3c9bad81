// Package tui is the terminal front end. Screens render the state of a
// view model and translate key presses into its events.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/internal/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal program.
type TUI struct {
	services  *service.ClientServices
	downloads viewmodel.Downloader
	observer  viewmodel.LocationObserver
	opts      viewmodel.Options
	logger    *logger.Logger
}

// New creates a TUI over services. Attachments are saved through downloads;
// observer feeds the nearby assignments screen, which is hidden when nil.
func New(services *service.ClientServices, downloads viewmodel.Downloader, observer viewmodel.LocationObserver, opts viewmodel.Options, log *logger.Logger) *TUI {
	if opts.Logger == nil {
		opts.Logger = log
	}
	return &TUI{services: services, downloads: downloads, observer: observer, opts: opts, logger: log}
}

// Run blocks until the user quits or logs out. logout reports the latter,
// in which case the caller may start a new session.
func (t *TUI) Run(ctx context.Context) (logout bool, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newAppModel(ctx, t.services, t.downloads, t.observer, t.opts)
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if result, ok := final.(appModel); ok {
		result.detach()
		if err == nil {
			if result.logout {
				return true, nil
			}
			if result.quit {
				return false, ErrUserQuit
			}
		}
	} else {
		model.detach()
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return false, ctx.Err()
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("program failed")
		return false, fmt.Errorf("run tui: %w", err)
	}
	return false, nil
}
