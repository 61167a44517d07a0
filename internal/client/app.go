// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package client

import (
	"context"
	"errors"

	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/service"
	"github.com/dkotenko/claviger/internal/tui"
	"github.com/dkotenko/claviger/internal/workers"
)

// App ties the unlock flow, the vault browser and the background flush
// worker into one process lifetime. The UI alternates between the two
// flows: every lock (auto-lock, explicit lock, password change) drops
// back to the unlock screen until the user quits for real.
type App struct {
	services *service.Services
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, background *workers.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("app requires services and ui")
	}
	return &App{services: services, tui: ui, workers: background, logger: log}, nil
}

// Run implements [Client].
func (a *App) Run() error {
	ctx := context.Background()

	if a.workers != nil {
		a.workers.Run()
		defer a.workers.Stop()
	}

	for {
		if err := a.tui.UnlockFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		relock, err := a.tui.MainLoop(ctx)
		if err != nil {
			a.services.Session.Lock()
			return err
		}
		if !relock {
			// Quit from the browser: wipe the session before exiting.
			a.services.Session.Lock()
			return nil
		}
		a.logger.Info().Str("func", "App.Run").Msg("session locked, returning to unlock screen")
	}
}
