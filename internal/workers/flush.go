// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/service"
)

// FlushWorker periodically retries a pending remote push in the
// background, so a vault edited offline catches up without the user
// pressing "sync now". Flush itself is a no-op when nothing is pending,
// so the ticker is cheap.
type FlushWorker struct {
	orchestrator service.SyncOrchestrator
	interval     time.Duration
	logger       *logger.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewFlushWorker(orchestrator service.SyncOrchestrator, interval time.Duration, log *logger.Logger) *FlushWorker {
	return &FlushWorker{
		orchestrator: orchestrator,
		interval:     interval,
		logger:       log,
		stop:         make(chan struct{}),
	}
}

// Run implements [Worker].
func (w *FlushWorker) Run() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				if err := w.orchestrator.Flush(context.Background()); err != nil {
					w.logger.Debug().Err(err).Str("func", "FlushWorker.Run").Msg("background flush failed, will retry")
				}
			}
		}
	}()
}

// Stop implements [Worker].
func (w *FlushWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}
