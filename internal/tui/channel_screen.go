package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pet-walker/internal/viewmodel"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// channelPromptScreen asks for the channel to open.
type channelPromptScreen struct {
	input  textinput.Model
	errMsg string
}

func newChannelPromptScreen() channelPromptScreen {
	in := textinput.New()
	in.Placeholder = "channel id"
	in.CharLimit = 19
	in.Width = 20
	in.Focus()
	return channelPromptScreen{input: in}
}

// channelID parses the typed id.
func (s channelPromptScreen) channelID() (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s.input.Value()), 10, 64)
	return id, err == nil && id > 0
}

func (s channelPromptScreen) View() string {
	body := "Channel │ [" + s.input.View() + "]"
	if s.errMsg != "" {
		body += "\n\n" + errorStyle.Render(s.errMsg)
	}
	return renderPage("OPEN CHANNEL", body, "enter: open │ esc: back")
}

// channelScreen renders viewmodel.Channel: messages with the newest page
// first and a draft line at the bottom.
type channelScreen struct {
	vm    *viewmodel.Channel
	draft textinput.Model
	idx   int
}

func newChannelScreen(vm *viewmodel.Channel) channelScreen {
	in := textinput.New()
	in.Placeholder = "message"
	in.Width = 60
	in.Focus()
	return channelScreen{vm: vm, draft: in}
}

func (s channelScreen) selected() (models.Message, bool) {
	items := s.vm.State().Messages.Items
	if s.idx < 0 || s.idx >= len(items) {
		return models.Message{}, false
	}
	return items[s.idx], true
}

// sync mirrors a draft cleared by a successful send into the input.
func (s channelScreen) sync() channelScreen {
	st := s.vm.State()
	if st.Draft.Content == "" && s.draft.Value() != "" && st.Send.Done() {
		s.draft.SetValue("")
	}
	s.idx = max(0, min(s.idx, len(st.Messages.Items)-1))
	return s
}

func (s channelScreen) update(msg tea.Msg) (channelScreen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		st := s.vm.State()
		switch {
		case key.Matches(keyMsg, keys.up):
			if s.idx > 0 {
				s.idx--
			}
			return s, nil
		case key.Matches(keyMsg, keys.down):
			if s.idx < len(st.Messages.Items)-1 {
				s.idx++
			}
			return s, nil
		case key.Matches(keyMsg, keys.pageDown):
			if st.Messages.Loaded && !st.Messages.MaxPageReached {
				s.vm.Handle(viewmodel.LoadPage{Page: st.Messages.Window.Last + 1})
			}
			return s, nil
		case key.Matches(keyMsg, keys.pageUp):
			if st.Messages.Window.First > 1 {
				s.vm.Handle(viewmodel.LoadPage{Page: st.Messages.Window.First - 1})
			}
			return s, nil
		case key.Matches(keyMsg, keys.refresh):
			s.vm.Handle(viewmodel.Refresh{})
			return s, nil
		case key.Matches(keyMsg, keys.download):
			if m, ok := s.selected(); ok && m.AttachmentRef != "" {
				s.vm.Handle(viewmodel.DownloadAttachment{Reference: m.AttachmentRef, Name: m.AttachmentName})
			}
			return s, nil
		case key.Matches(keyMsg, keys.enter):
			if st.CanSend {
				s.vm.Handle(viewmodel.SendMessage{})
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	before := s.draft.Value()
	s.draft, cmd = s.draft.Update(msg)
	if value := s.draft.Value(); value != before {
		draft := s.vm.State().Draft
		draft.Content = value
		s.vm.Handle(viewmodel.DraftChanged{Draft: draft})
	}
	return s, cmd
}

func (s channelScreen) View() string {
	st := s.vm.State()

	title := "CHANNEL"
	if ch, ok := st.Channel.Value(); ok {
		title = fmt.Sprintf("CHANNEL #%d · assignment %d", ch.ID, ch.AssignmentID)
	}

	var b strings.Builder
	switch {
	case !st.Messages.Loaded && st.Messages.Status.IsFailed():
		kind, _ := st.Messages.Status.Kind()
		b.WriteString(errorStyle.Render(kindMessage(kind)) + "\n")
	case !st.Messages.Loaded:
		b.WriteString("loading...\n")
	case len(st.Messages.Items) == 0:
		b.WriteString("No messages yet\n")
	default:
		for i, m := range st.Messages.Items {
			line := fmt.Sprintf("[%s] #%d: %s", m.SentAt.Format("02.01 15:04"), m.SenderID, valueOrDash(m.Content))
			if m.AttachmentRef != "" {
				line += " 📎 " + valueOrDash(m.AttachmentName)
			}
			b.WriteString(row(i == s.idx, fitText(line, 100)) + "\n")
		}
	}

	b.WriteString("\n> " + s.draft.View() + "\n")
	if !st.DraftValidation.Valid && s.draft.Value() != "" {
		b.WriteString(errorStyle.Render(st.DraftValidation.Text()) + "\n")
	}
	switch {
	case st.Send.InFlight():
		b.WriteString("sending...\n")
	case st.Send.Result.IsFailed():
		kind, _ := st.Send.Result.Kind()
		b.WriteString(errorStyle.Render("not sent: "+kindMessage(kind)) + "\n")
	}
	switch {
	case st.Download.InFlight():
		b.WriteString("downloading...\n")
	case st.Download.Done():
		b.WriteString(statusStyle.Render("downloaded") + "\n")
	case st.Download.Result.IsFailed() && st.Download.Started:
		b.WriteString(errorStyle.Render("download failed") + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: send │ pgdn: older │ pgup: newer │ ctrl+d: download │ ctrl+r: refresh │ esc: back")
}
