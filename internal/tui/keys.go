package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	toggle   key.Binding
	channel  key.Binding
	copy     key.Binding
	download key.Binding
	role     key.Binding
	nearby   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	refresh:  key.NewBinding(key.WithKeys("ctrl+r")),
	toggle:   key.NewBinding(key.WithKeys("ctrl+t")),
	channel:  key.NewBinding(key.WithKeys("ctrl+o")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	download: key.NewBinding(key.WithKeys("ctrl+d")),
	role:     key.NewBinding(key.WithKeys("ctrl+w")),
	nearby:   key.NewBinding(key.WithKeys("ctrl+n")),
}
