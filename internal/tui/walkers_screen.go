package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pet-walker/internal/paging"
	"github.com/MKhiriev/go-pet-walker/internal/viewmodel"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// walkersScreen renders viewmodel.FeaturedWalkers as a scrolling list.
// Moving past either end of the list asks for the adjacent page.
type walkersScreen struct {
	vm       *viewmodel.FeaturedWalkers
	pageSize int
	idx      int
	window   paging.Window
	count    int
	spinner  spinner.Model
	status   string
}

func newWalkersScreen(vm *viewmodel.FeaturedWalkers, pageSize int) walkersScreen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return walkersScreen{vm: vm, pageSize: pageSize, window: paging.InitialWindow(), spinner: s}
}

// sync keeps the cursor on the same walker across merges.
func (s walkersScreen) sync() walkersScreen {
	st := s.vm.State().Walkers
	if !st.Loaded {
		return s
	}
	s.idx = shiftCursor(s.idx, s.window, st.Window, s.count, len(st.Items), s.pageSize)
	s.window, s.count = st.Window, len(st.Items)
	return s
}

// shiftCursor maps a cursor position from the list of window from to the
// list of window to.
func shiftCursor(idx int, from, to paging.Window, oldLen, newLen, pageSize int) int {
	switch {
	case to == from:
	case to.Last == from.First && to.First < from.First:
		// prepended a page; the old head is kept after it
		idx += newLen - min(oldLen, pageSize)
	case to.First == from.Last && to.Last > from.Last:
		// appended a page; pages before from.Last were dropped
		idx -= (from.Last - from.First) * pageSize
	default:
		idx = 0
	}
	return max(0, min(idx, newLen-1))
}

func (s walkersScreen) selected() (models.Walker, bool) {
	items := s.vm.State().Walkers.Items
	if s.idx < 0 || s.idx >= len(items) {
		return models.Walker{}, false
	}
	return items[s.idx], true
}

func (s walkersScreen) update(msg tea.Msg) (walkersScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		st := s.vm.State().Walkers
		switch {
		case key.Matches(msg, keys.up):
			if s.idx > 0 {
				s.idx--
			} else if st.Window.First > 1 && !st.Status.IsLoading() {
				s.vm.Handle(viewmodel.LoadPage{Page: st.Window.First - 1})
				return s, s.spinner.Tick
			}
		case key.Matches(msg, keys.down):
			if s.idx < len(st.Items)-1 {
				s.idx++
			} else if st.Loaded && !st.MaxPageReached && !st.Status.IsLoading() {
				s.vm.Handle(viewmodel.LoadPage{Page: st.Window.Last + 1})
				return s, s.spinner.Tick
			}
		case key.Matches(msg, keys.refresh):
			s.vm.Handle(viewmodel.Refresh{})
			return s, s.spinner.Tick
		case key.Matches(msg, keys.copy):
			if w, ok := s.selected(); ok && w.Email != "" {
				return s, cmdCopyToClipboard(w.Email)
			}
		}
	case spinner.TickMsg:
		if s.vm.State().Walkers.Status.IsLoading() {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s walkersScreen) View() string {
	st := s.vm.State().Walkers

	var b strings.Builder
	if st.IsLoadingBackward() {
		b.WriteString(s.spinner.View() + " loading...\n")
	}

	switch {
	case !st.Loaded && st.Status.IsFailed():
		kind, _ := st.Status.Kind()
		b.WriteString(errorStyle.Render(kindMessage(kind)) + "\n")
	case !st.Loaded:
		b.WriteString(s.spinner.View() + " loading...\n")
	case len(st.Items) == 0:
		b.WriteString("No featured walkers yet\n")
	default:
		for i, w := range st.Items {
			line := fmt.Sprintf("%-24s ★ %.1f (%d)  %d/h", fitText(w.Name, 24), w.Rating, w.ReviewCount, w.HourlyRate)
			b.WriteString(row(i == s.idx, line) + "\n")
		}
	}

	if st.IsLoadingForward() {
		b.WriteString(s.spinner.View() + " loading...\n")
	}
	if st.Loaded && st.Status.IsFailed() {
		kind, _ := st.Status.Kind()
		b.WriteString("\n" + errorStyle.Render(kindMessage(kind)) + " (ctrl+r to retry)\n")
	}
	fmt.Fprintf(&b, "\npages %d-%d of %d", st.Window.First, st.Window.Last, st.TotalPages)
	if s.status != "" {
		b.WriteString("\n" + statusStyle.Render(s.status))
	}

	return renderPage("FEATURED WALKERS", b.String(),
		"↑/↓: scroll │ ctrl+r: refresh │ ctrl+y: copy email │ ctrl+o: open channel │ ctrl+n: nearby │ ctrl+l: log out")
}
