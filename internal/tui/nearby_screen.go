package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pet-walker/internal/viewmodel"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// nearbyScreen renders viewmodel.Map as a list of open assignments around
// the device, nearest first as returned by the server.
type nearbyScreen struct {
	vm  *viewmodel.Map
	idx int
}

func newNearbyScreen(vm *viewmodel.Map) nearbyScreen {
	return nearbyScreen{vm: vm}
}

func (s nearbyScreen) sync() nearbyScreen {
	nearby, _ := s.vm.State().Nearby.Value()
	s.idx = max(0, min(s.idx, len(nearby)-1))
	return s
}

func (s nearbyScreen) update(msg tea.Msg) (nearbyScreen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	nearby, _ := s.vm.State().Nearby.Value()
	switch {
	case key.Matches(keyMsg, keys.up):
		if s.idx > 0 {
			s.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if s.idx < len(nearby)-1 {
			s.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if s.idx < len(nearby) {
			s.vm.Handle(viewmodel.SelectAssignment{ID: nearby[s.idx].ID})
		}
	case key.Matches(keyMsg, keys.refresh):
		s.vm.Handle(viewmodel.Refresh{})
	}
	return s, nil
}

func (s nearbyScreen) View() string {
	st := s.vm.State()

	var b strings.Builder
	here, located := st.Location.Value()
	if !located {
		b.WriteString("waiting for location...\n")
	} else {
		fmt.Fprintf(&b, "within %.0f km of %.4f, %.4f\n\n", st.RadiusKm, here.Latitude, here.Longitude)
	}

	if located {
		st.Nearby.Match(
			func() { b.WriteString("loading...\n") },
			func(kind models.ErrorKind) {
				b.WriteString(errorStyle.Render(kindMessage(kind)) + " (ctrl+r to retry)\n")
			},
			func(nearby []models.Assignment) {
				if len(nearby) == 0 {
					b.WriteString("No open assignments nearby\n")
				}
				for i, a := range nearby {
					line := fmt.Sprintf("%-32s %5.1f km  %d", fitText(a.Title, 32), here.DistanceKm(a.Location), a.Price)
					b.WriteString(row(i == s.idx, line) + "\n")
				}
			},
		)
	}

	if a, ok := st.Selected(); ok {
		fmt.Fprintf(&b, "\n%s\n%s - %s\n%s\n",
			titleStyle.Render(a.Title),
			a.StartsAt.Format("02.01 15:04"), a.EndsAt.Format("15:04"),
			valueOrDash(a.Description))
	}

	return renderPage("NEARBY ASSIGNMENTS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ enter: details │ ctrl+r: refresh │ esc: back")
}
