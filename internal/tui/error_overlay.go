package tui

// errorOverlayModel is a modal error box. It swallows keys until closed
// with enter or esc.
type errorOverlayModel struct {
	title   string
	message string
}

func (m errorOverlayModel) View() string {
	title := m.title
	if title == "" {
		title = "Error"
	}
	content := errorStyle.Render(title) + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}
