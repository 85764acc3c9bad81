package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pet-walker/internal/paging"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/internal/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenAuth screen = iota
	screenWalkers
	screenChannelPrompt
	screenChannel
	screenNearby
)

// appModel owns at most one view model at a time. Its subscription feeds
// changed, which a single waitForChange command turns into stateChangedMsg.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	downloads viewmodel.Downloader
	observer  viewmodel.LocationObserver
	opts      viewmodel.Options
	changed   chan struct{}

	currentScreen screen
	auth          authScreen
	walkers       walkersScreen
	prompt        channelPromptScreen
	channel       channelScreen
	nearby        nearbyScreen

	unsubscribe func()
	closeVM     func()

	overlay *errorOverlayModel

	logout bool
	quit   bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, downloads viewmodel.Downloader, observer viewmodel.LocationObserver, opts viewmodel.Options) appModel {
	m := appModel{
		ctx:       ctx,
		services:  services,
		downloads: downloads,
		observer:  observer,
		opts:      opts,
		changed:   make(chan struct{}, 1),
	}
	m.openAuth()
	return m
}

// attach makes vm the active view model.
func attach[S any](m *appModel, vm interface {
	Subscribe(func(S)) func()
	Close()
}) {
	m.detach()
	changed := m.changed
	m.unsubscribe = vm.Subscribe(func(S) { notify(changed) })
	m.closeVM = vm.Close
	notify(changed)
}

// detach unsubscribes from and closes the active view model.
func (m *appModel) detach() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	if m.closeVM != nil {
		m.closeVM()
		m.closeVM = nil
	}
}

func (m *appModel) openAuth() {
	vm := viewmodel.NewAuth(m.ctx, m.services.AuthService, m.opts)
	attach[viewmodel.AuthState](m, vm)
	m.auth = newAuthScreen(vm)
	m.currentScreen = screenAuth
}

func (m *appModel) openWalkers() {
	vm := viewmodel.NewFeaturedWalkers(m.ctx, m.services.WalkerService, m.opts)
	attach[viewmodel.FeaturedWalkersState](m, vm)
	pageSize := m.opts.PageSize
	if pageSize <= 0 {
		pageSize = paging.DefaultPageSize
	}
	m.walkers = newWalkersScreen(vm, pageSize)
	m.currentScreen = screenWalkers
}

func (m *appModel) openChannel(id int64) {
	vm := viewmodel.NewChannel(m.ctx, id, m.services.ChannelService, m.downloads, m.opts)
	attach[viewmodel.ChannelState](m, vm)
	m.channel = newChannelScreen(vm)
	m.currentScreen = screenChannel
}

func (m *appModel) openNearby() {
	vm := viewmodel.NewMap(m.ctx, m.observer, m.services.AssignmentService, viewmodel.DefaultMapRadiusKm, m.opts)
	attach[viewmodel.MapState](m, vm)
	m.nearby = newNearbyScreen(vm)
	m.currentScreen = screenNearby
}

func (m appModel) showError(title string, err error) appModel {
	m.overlay = &errorOverlayModel{title: title, message: err.Error()}
	return m
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) Init() tea.Cmd {
	return waitForChange(m.ctx, m.changed)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.detach()
			m.quit = true
			return m, tea.Quit
		}
		if m.overlay != nil {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.overlay = nil
			}
			return m, nil
		}

	case stateChangedMsg:
		m = m.onStateChanged()
		return m, waitForChange(m.ctx, m.changed)

	case loggedOutMsg:
		if msg.err != nil {
			return m.showError("Log out failed", errors.New(humanizeError(msg.err))), nil
		}
		m.detach()
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		m.walkers.status = "copied"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.walkers.status = ""
		return m, nil

	case errMsg:
		return m.showError("", msg.err), nil
	}

	if m.overlay != nil {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case screenAuth:
		m.auth, cmd = m.auth.update(msg)

	case screenWalkers:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, keys.logout):
				return m, m.cmdLogout()
			case key.Matches(keyMsg, keys.channel):
				m.prompt = newChannelPromptScreen()
				m.currentScreen = screenChannelPrompt
				return m, nil
			case key.Matches(keyMsg, keys.nearby) && m.observer != nil:
				m.openNearby()
				return m, nil
			}
		}
		m.walkers, cmd = m.walkers.update(msg)

	case screenChannelPrompt:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.currentScreen = screenWalkers
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				id, ok := m.prompt.channelID()
				if !ok {
					m.prompt.errMsg = "enter a positive number"
					return m, nil
				}
				m.openChannel(id)
				return m, nil
			}
		}
		m.prompt.input, cmd = m.prompt.input.Update(msg)

	case screenChannel:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			m.openWalkers()
			return m, nil
		}
		m.channel, cmd = m.channel.update(msg)

	case screenNearby:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			m.openWalkers()
			return m, nil
		}
		m.nearby, cmd = m.nearby.update(msg)
	}
	return m, cmd
}

// onStateChanged reacts to the active view model's new state.
func (m appModel) onStateChanged() appModel {
	switch m.currentScreen {
	case screenAuth:
		if m.auth.vm.State().SignIn.Done() {
			m.openWalkers()
		}
	case screenWalkers:
		m.walkers = m.walkers.sync()
	case screenChannel:
		m.channel = m.channel.sync()
	case screenNearby:
		m.nearby = m.nearby.sync()
	}
	return m
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenAuth:
		body = m.auth.View()
	case screenWalkers:
		body = m.walkers.View()
	case screenChannelPrompt:
		body = m.prompt.View()
	case screenChannel:
		body = m.channel.View()
	case screenNearby:
		body = m.nearby.View()
	}
	if m.overlay != nil {
		body += "\n\n" + m.overlay.View()
	}
	return appStyle.Render(body)
}
