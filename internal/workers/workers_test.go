// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package workers

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/mock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run()  { m.runCount++ }
func (m *mockWorker) Stop() { m.stopCount++ }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestFlushWorker_FlushesOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flushed := make(chan struct{}, 16)
	orch := mock.NewMockSyncOrchestrator(ctrl)
	orch.EXPECT().Flush(gomock.Any()).DoAndReturn(func(any) error {
		select {
		case flushed <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(1)

	w := NewFlushWorker(orch, 5*time.Millisecond, logger.Nop())
	w.Run()
	defer w.Stop()

	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("expected a background flush within 1s")
	}
}

func TestFlushWorker_StopEndsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch := mock.NewMockSyncOrchestrator(ctrl)
	orch.EXPECT().Flush(gomock.Any()).Return(nil).AnyTimes()

	w := NewFlushWorker(orch, time.Millisecond, logger.Nop())
	w.Run()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return within 1s")
	}
}
