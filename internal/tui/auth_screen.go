// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/internal/viewmodel"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputName = iota
	inputEmail
	inputPassword
)

// authScreen renders viewmodel.Auth.
type authScreen struct {
	vm     *viewmodel.Auth
	inputs []textinput.Model
	focus  int
}

func newAuthScreen(vm *viewmodel.Auth) authScreen {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = validators.MaxNameLength
	name.Width = 40

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return authScreen{vm: vm, inputs: []textinput.Model{name, email, password}, focus: inputEmail}
}

// order lists the inputs shown in mode.
func (s authScreen) order(mode viewmodel.AuthMode) []int {
	if mode == viewmodel.ModeRegister {
		return []int{inputName, inputEmail, inputPassword}
	}
	return []int{inputEmail, inputPassword}
}

func (s authScreen) move(delta int) authScreen {
	order := s.order(s.vm.State().Mode)
	pos := 0
	for i, idx := range order {
		if idx == s.focus {
			pos = i
		}
	}
	s.inputs[s.focus].Blur()
	s.focus = order[(pos+delta+len(order))%len(order)]
	s.inputs[s.focus].Focus()
	return s
}

func (s authScreen) update(msg tea.Msg) (authScreen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return s.move(1), nil
		case key.Matches(keyMsg, keys.backtab):
			return s.move(-1), nil
		case key.Matches(keyMsg, keys.toggle):
			s.vm.Handle(viewmodel.ToggleMode{})
			if s.focus == inputName {
				s = s.move(1)
			}
			return s, nil
		case key.Matches(keyMsg, keys.role):
			role := models.RoleWalker
			if s.vm.State().Register.Value.Role == models.RoleWalker {
				role = models.RoleOwner
			}
			s.vm.Handle(viewmodel.RoleChanged{Role: role})
			return s, nil
		case key.Matches(keyMsg, keys.enter):
			if !s.vm.State().SignIn.InFlight() {
				s.vm.Handle(viewmodel.Submit{})
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	before := s.inputs[s.focus].Value()
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	if value := s.inputs[s.focus].Value(); value != before {
		switch s.focus {
		case inputName:
			s.vm.Handle(viewmodel.NameChanged{Name: value})
		case inputEmail:
			s.vm.Handle(viewmodel.EmailChanged{Email: strings.TrimSpace(value)})
		case inputPassword:
			s.vm.Handle(viewmodel.PasswordChanged{Password: value})
		}
	}
	return s, cmd
}

func (s authScreen) View() string {
	st := s.vm.State()

	var (
		b      strings.Builder
		title  = "SIGN IN"
		errFor func(string) string
	)
	if st.Mode == viewmodel.ModeRegister {
		title = "CREATE ACCOUNT"
		errFor = st.Register.Error
	} else {
		errFor = st.Login.Error
	}

	labels := map[int]string{inputName: "Name    ", inputEmail: "Email   ", inputPassword: "Password"}
	fields := map[int]string{inputName: validators.FieldName, inputEmail: validators.FieldEmail, inputPassword: validators.FieldPassword}
	for _, idx := range s.order(st.Mode) {
		b.WriteString(labels[idx])
		b.WriteString(" │ [")
		b.WriteString(s.inputs[idx].View())
		b.WriteString("]\n")
		if msg := errFor(fields[idx]); msg != "" {
			b.WriteString("         │ ")
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	if st.Mode == viewmodel.ModeRegister {
		b.WriteString("Role     │ ")
		b.WriteString(string(st.Register.Value.Role))
		b.WriteString("\n")
	}

	switch {
	case st.SignIn.InFlight():
		b.WriteString("\n[Submitting...]\n")
	case st.SignIn.Result.IsFailed():
		kind, _ := st.SignIn.Result.Kind()
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(kindMessage(kind)))
		b.WriteString("\n")
	}

	help := "tab: next field │ enter: submit │ ctrl+t: sign in / register"
	if st.Mode == viewmodel.ModeRegister {
		help += " │ ctrl+w: role"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), help)
}
