package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// stateChangedMsg tells the app that the active view model published a new
// state.
type stateChangedMsg struct{}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type errMsg struct {
	err error
}

// notify performs a non-blocking send; one pending signal is enough since
// the screen always renders the latest state.
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func waitForChange(ctx context.Context, ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ch:
			return stateChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
