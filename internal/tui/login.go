// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/models"
)

// loginModel is the sign-in screen. It renders email and password inputs and
// dispatches an async sign-in on submit. The program quits once a session is
// obtained.
type loginModel struct {
	ctx       context.Context
	auth      service.AuthService
	buildInfo models.AppBuildInfo

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	showBuildInfo bool

	session    models.Session
	done       bool
	quitByUser bool
}

func newLoginModel(ctx context.Context, auth service.AuthService, buildInfo models.AppBuildInfo) loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "you@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{
		ctx:       ctx,
		auth:      auth,
		buildInfo: buildInfo,
		inputs:    []textinput.Model{emailInput, passwordInput},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - loginResultMsg: finishes the flow or shows the error.
//   - tab / shift+tab: moves focus between the inputs.
//   - enter: validates and dispatches the sign-in.
//   - ctrl+c / esc: quits.
//
// Other keys go to the focused input.
func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.session = result.session
		m.done = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitByUser = true
		return m, tea.Quit
	case "ctrl+v":
		m.showBuildInfo = true
		return m, nil
	case "tab", "down":
		m.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.focusPrev()
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}
		// enter on the email field moves on to the password
		if m.focus == 0 {
			m.focusNext()
			return m, nil
		}

		email := strings.TrimSpace(m.inputs[0].Value())
		pass := m.inputs[1].Value()
		if email == "" || pass == "" {
			m.errMsg = "Email and password are required"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSignIn(email, pass)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString("Email     │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password  │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("TRAVEL JOURNAL · SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ ctrl+v: about │ esc: quit")
}

func (m loginModel) cmdSignIn(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.SignIn(ctx, models.Credentials{Email: email, Password: pass})
		return loginResultMsg{session: session, err: err}
	}
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
