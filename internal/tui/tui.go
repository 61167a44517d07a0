// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

// Package tui is the terminal front end: an unlock screen followed by a
// vault browser. It talks to the session controller only; no crypto,
// storage or transport details leak into the view layer.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/service"
	"github.com/dkotenko/claviger/models"
)

// ErrUserQuit reports that the user closed the program deliberately.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// UnlockFlow runs the unlock screen until the session is unlocked or the
// user quits.
func (t *TUI) UnlockFlow(ctx context.Context) error {
	model := newUnlockModel(ctx, t.services.Session, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*unlockModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the vault browser. It returns relock=true when the
// session locked underneath the UI (auto-lock or an explicit lock), in
// which case the caller should restart the unlock flow.
func (t *TUI) MainLoop(ctx context.Context) (relock bool, err error) {
	model := newBrowserModel(ctx, t.services.Session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.relock, nil
}
