// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/claviger/internal/crypto"
	"github.com/dkotenko/claviger/internal/service"
	"github.com/dkotenko/claviger/models"
)

// unlockModel is the Bubble Tea model for the unlock screen: a single
// masked password input. On first run the same screen doubles as vault
// creation, so the hint text explains that an unknown password starts a
// new vault.
type unlockModel struct {
	ctx     context.Context
	session service.SessionService

	password   textinput.Model
	submitting bool
	errMsg     string
	firstRun   bool
	unlocked   bool
	quitByUser bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func newUnlockModel(ctx context.Context, session service.SessionService, buildInfo models.AppBuildInfo) *unlockModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return &unlockModel{
		ctx:       ctx,
		session:   session,
		password:  passwordInput,
		buildInfo: buildInfo,
	}
}

// Init implements [tea.Model].
func (m *unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(unlockDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errMsg = humanizeUnlockError(done.err)
			m.password.SetValue("")
			return m, nil
		}
		m.firstRun = done.firstRun
		m.unlocked = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "v":
			if m.password.Value() == "" {
				m.showBuildInfo = !m.showBuildInfo
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			if m.password.Value() == "" {
				m.errMsg = "password must not be empty"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(m.password.Value())
		}
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *unlockModel) View() string {
	if m.showBuildInfo {
		return renderPage("ABOUT", renderBuildInfo(m.buildInfo), "v: back")
	}

	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.password.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}
	b.WriteString("\nIf no vault exists yet, this password creates one.")

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("CLAVIGER — UNLOCK", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: quit")
}

func (m *unlockModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		res, err := session.Unlock(ctx, password)
		return unlockDoneMsg{firstRun: res.FirstRun, err: err}
	}
}

func humanizeUnlockError(err error) string {
	if errors.Is(err, crypto.ErrAuthentication) {
		return "wrong password or corrupted data"
	}
	return err.Error()
}

func renderBuildInfo(info models.AppBuildInfo) string {
	return fmt.Sprintf("Version │ %s\nDate    │ %s\nCommit  │ %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
}
