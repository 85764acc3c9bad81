package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/mock"
	"github.com/MKhiriev/go-pet-walker/internal/paging"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/internal/viewmodel"
	"github.com/MKhiriev/go-pet-walker/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestShiftCursor(t *testing.T) {
	tests := []struct {
		name           string
		idx            int
		from, to       paging.Window
		oldLen, newLen int
		want           int
	}{
		{name: "same window", idx: 3, from: paging.Window{First: 1, Last: 2}, to: paging.Window{First: 1, Last: 2}, oldLen: 6, newLen: 6, want: 3},
		{name: "prepended page", idx: 0, from: paging.Window{First: 2, Last: 3}, to: paging.Window{First: 1, Last: 2}, oldLen: 6, newLen: 6, want: 3},
		{name: "appended page", idx: 5, from: paging.Window{First: 1, Last: 2}, to: paging.Window{First: 2, Last: 3}, oldLen: 6, newLen: 5, want: 2},
		{name: "first load", idx: 0, from: paging.InitialWindow(), to: paging.Window{First: 1, Last: 1}, oldLen: 0, newLen: 3, want: 0},
		{name: "jump resets", idx: 4, from: paging.Window{First: 1, Last: 2}, to: paging.Window{First: 7, Last: 7}, oldLen: 6, newLen: 3, want: 0},
		{name: "clamped to shorter list", idx: 5, from: paging.Window{First: 1, Last: 2}, to: paging.Window{First: 1, Last: 2}, oldLen: 6, newLen: 4, want: 3},
		{name: "empty list", idx: 2, from: paging.Window{First: 1, Last: 1}, to: paging.Window{First: 1, Last: 1}, oldLen: 3, newLen: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shiftCursor(tt.idx, tt.from, tt.to, tt.oldLen, tt.newLen, 3))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "пёс...", fitText("пёсик гуляет", 6))
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash("  "))
	assert.Equal(t, "rex", valueOrDash("rex"))
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, kindMessage(models.NotFound), humanizeError(models.ErrNotFound))
	assert.Equal(t, kindMessage(models.Unknown), humanizeError(errors.New("boom")))
	assert.NotEqual(t, kindMessage(models.Network), kindMessage(models.ServerError))
}

func TestChannelPrompt_ChannelID(t *testing.T) {
	s := newChannelPromptScreen()

	s.input.SetValue(" 42 ")
	id, ok := s.channelID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		s.input.SetValue(bad)
		_, ok = s.channelID()
		assert.False(t, ok, bad)
	}
}

func TestNotify_DoesNotBlock(t *testing.T) {
	ch := make(chan struct{}, 1)
	notify(ch)
	notify(ch)

	msg := waitForChange(context.Background(), ch)()
	assert.IsType(t, stateChangedMsg{}, msg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, waitForChange(ctx, ch)())
}

type staticObserver struct{ at models.Location }

func (o staticObserver) Current() (models.Location, bool) { return o.at, true }
func (o staticObserver) Start(context.Context) {}
func (o staticObserver) Stop() {}
func (o staticObserver) First(context.Context) (models.Location, error) { return o.at, nil }

type testApp struct {
	auth        *mock.MockAuthService
	walkers     *mock.MockWalkerService
	assignments *mock.MockAssignmentService
}

func newTestApp(t *testing.T) (appModel, testApp) {
	ctrl := gomock.NewController(t)
	deps := testApp{
		auth:        mock.NewMockAuthService(ctrl),
		walkers:     mock.NewMockWalkerService(ctrl),
		assignments: mock.NewMockAssignmentService(ctrl),
	}
	services := &service.ClientServices{
		AuthService:       deps.auth,
		WalkerService:     deps.walkers,
		AssignmentService: deps.assignments,
	}
	return appModel{
		ctx:      context.Background(),
		services: services,
		opts:     viewmodel.Options{PageSize: 2},
		observer: staticObserver{at: models.Location{Latitude: 55.75, Longitude: 37.61}},
		changed:  make(chan struct{}, 1),
	}, deps
}

// pump feeds state changes to m until done holds.
func pump(t *testing.T, m appModel, done func(appModel) bool) appModel {
	t.Helper()
	require.Eventually(t, func() bool {
		next, _ := m.Update(stateChangedMsg{})
		m = next.(appModel)
		return done(m)
	}, time.Second, 5*time.Millisecond)
	return m
}

func TestAppModel_RestoredSessionOpensWalkers(t *testing.T) {
	m, deps := newTestApp(t)
	deps.auth.EXPECT().CurrentSession(gomock.Any()).Return(models.Session{UserID: 1, Token: "t"}, nil)
	deps.walkers.EXPECT().Featured(gomock.Any(), models.PageRequest{Page: 1, PageSize: 2}).Return(models.Paged[models.Walker]{
		Result:     []models.Walker{{User: models.User{ID: 5, Name: "Ann", Email: "ann@example.com"}}},
		PageSize:   2,
		TotalPages: 1,
	}, nil)

	m.openAuth()
	m = pump(t, m, func(m appModel) bool {
		return m.currentScreen == screenWalkers && m.walkers.vm.State().Walkers.Loaded
	})
	defer m.detach()

	w, ok := m.walkers.selected()
	require.True(t, ok)
	assert.Equal(t, "Ann", w.Name)
	assert.Contains(t, m.View(), "Ann")
}

func TestAppModel_QuitClosesViewModel(t *testing.T) {
	m, deps := newTestApp(t)
	deps.auth.EXPECT().CurrentSession(gomock.Any()).Return(models.Session{}, models.ErrUnauthorized)

	m.openAuth()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(appModel)

	assert.True(t, m.quit)
	assert.Nil(t, m.closeVM)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_ErrorOverlaySwallowsKeys(t *testing.T) {
	m, deps := newTestApp(t)
	deps.auth.EXPECT().CurrentSession(gomock.Any()).Return(models.Session{}, models.ErrUnauthorized)
	m.openAuth()
	defer m.detach()

	next, _ := m.Update(errMsg{err: errors.New("clipboard unavailable")})
	m = next.(appModel)
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "clipboard unavailable")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = next.(appModel)
	assert.Empty(t, m.auth.inputs[inputEmail].Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(appModel)
	assert.Nil(t, m.overlay)
}

func TestAppModel_NearbyAssignments(t *testing.T) {
	m, deps := newTestApp(t)
	deps.assignments.EXPECT().List(gomock.Any(), gomock.Any(), models.PageRequest{Page: 1, PageSize: 2}).
		DoAndReturn(func(_ context.Context, filter models.AssignmentFilter, _ models.PageRequest) (models.Paged[models.Assignment], error) {
			assert.Equal(t, models.AssignmentOpen, filter.Status)
			assert.NotNil(t, filter.Bounds)
			return models.Paged[models.Assignment]{Result: []models.Assignment{
				{ID: 9, Title: "Evening walk", Location: models.Location{Latitude: 55.76, Longitude: 37.62}},
			}, TotalPages: 1}, nil
		})

	m.openNearby()
	defer m.detach()
	m = pump(t, m, func(m appModel) bool {
		return m.nearby.vm.State().Nearby.IsSucceeded()
	})
	assert.Contains(t, m.View(), "Evening walk")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	m = pump(t, m, func(m appModel) bool {
		_, ok := m.nearby.vm.State().Selected()
		return ok
	})
}
