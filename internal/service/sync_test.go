// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkotenko/claviger/internal/adapter"
	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/mock"
	"github.com/dkotenko/claviger/internal/service"
	"github.com/dkotenko/claviger/internal/store"
	"github.com/dkotenko/claviger/models"
)

func newTestOrchestrator(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	service.SyncOrchestrator,
	*mock.MockVaultStore,
	*mock.MockRemoteStore,
) {
	t.Helper()
	mockLocal := mock.NewMockVaultStore(ctrl)
	mockRemote := mock.NewMockRemoteStore(ctrl)
	orch := service.NewSyncOrchestrator(mockLocal, mockRemote, logger.Nop())
	return orch, mockLocal, mockRemote
}

func testEnvelope() models.Envelope {
	return models.Envelope{Salt: "c2FsdA==", IV: "aXYxMjM0NTY3OA==", Ciphertext: "Y2lwaGVy"}
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Save_LocalAndRemoteOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	env := testEnvelope()

	gomock.InOrder(
		mockLocal.EXPECT().SaveEnvelope(ctx, env).Return(nil),
		mockRemote.EXPECT().Push(ctx, env).Return(nil),
		mockLocal.EXPECT().ClearPending(ctx).Return(nil),
	)

	require.NoError(t, orch.Save(ctx, env))
}

func TestSyncOrchestrator_Save_LocalFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, _ := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	env := testEnvelope()

	// Remote must not be touched when local persistence fails.
	mockLocal.EXPECT().SaveEnvelope(ctx, env).Return(errors.New("disk full"))

	err := orch.Save(ctx, env)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

func TestSyncOrchestrator_Save_RemoteFailureMarksPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	env := testEnvelope()

	gomock.InOrder(
		mockLocal.EXPECT().SaveEnvelope(ctx, env).Return(nil),
		mockRemote.EXPECT().Push(ctx, env).Return(errors.New("connection refused")),
		mockLocal.EXPECT().MarkPending(ctx).Return(nil),
	)

	// The caller still observes success: local durability is what counts.
	require.NoError(t, orch.Save(ctx, env))
}

func TestSyncOrchestrator_Save_NotConfiguredRemoteMarksPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	env := testEnvelope()

	gomock.InOrder(
		mockLocal.EXPECT().SaveEnvelope(ctx, env).Return(nil),
		mockRemote.EXPECT().Push(ctx, env).Return(adapter.ErrNotConfigured),
		mockLocal.EXPECT().MarkPending(ctx).Return(nil),
	)

	require.NoError(t, orch.Save(ctx, env))
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Load_RemoteWinsAndMirrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	remoteEnv := testEnvelope()

	gomock.InOrder(
		mockRemote.EXPECT().Pull(ctx).Return(remoteEnv, nil),
		mockLocal.EXPECT().SaveEnvelope(ctx, remoteEnv).Return(nil),
	)

	got, err := orch.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, remoteEnv, got)
}

func TestSyncOrchestrator_Load_RemoteUnreachableFallsBackToLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	localEnv := testEnvelope()

	gomock.InOrder(
		mockRemote.EXPECT().Pull(ctx).Return(models.Envelope{}, errors.New("timeout")),
		mockLocal.EXPECT().LoadEnvelope(ctx).Return(localEnv, nil),
	)

	got, err := orch.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, localEnv, got)
}

func TestSyncOrchestrator_Load_NothingAnywhereIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRemote.EXPECT().Pull(ctx).Return(models.Envelope{}, adapter.ErrNotFound),
		mockLocal.EXPECT().LoadEnvelope(ctx).Return(models.Envelope{}, fmt.Errorf("key %q: %w", "claviger/envelope", store.ErrNotFound)),
	)

	_, err := orch.Load(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSyncOrchestrator_Load_MirrorFailureDoesNotDropRemoteEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	remoteEnv := testEnvelope()

	gomock.InOrder(
		mockRemote.EXPECT().Pull(ctx).Return(remoteEnv, nil),
		mockLocal.EXPECT().SaveEnvelope(ctx, remoteEnv).Return(errors.New("disk full")),
	)

	got, err := orch.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, remoteEnv, got)
}

// ── Pending / Flush ──────────────────────────────────────────────────────────

func TestSyncOrchestrator_Flush_NothingPendingIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, _ := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	mockLocal.EXPECT().HasPending(ctx).Return(false, nil)

	require.NoError(t, orch.Flush(ctx))
}

func TestSyncOrchestrator_Flush_RepushesAndClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	env := testEnvelope()

	gomock.InOrder(
		mockLocal.EXPECT().HasPending(ctx).Return(true, nil),
		mockLocal.EXPECT().LoadEnvelope(ctx).Return(env, nil),
		mockRemote.EXPECT().Push(ctx, env).Return(nil),
		mockLocal.EXPECT().ClearPending(ctx).Return(nil),
	)

	require.NoError(t, orch.Flush(ctx))
}

func TestSyncOrchestrator_Flush_PushFailureIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, mockRemote := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	env := testEnvelope()

	gomock.InOrder(
		mockLocal.EXPECT().HasPending(ctx).Return(true, nil),
		mockLocal.EXPECT().LoadEnvelope(ctx).Return(env, nil),
		mockRemote.EXPECT().Push(ctx, env).Return(adapter.ErrUnauthorized),
	)

	// Unlike Save, a user-initiated flush must surface the failure.
	err := orch.Flush(ctx)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestSyncOrchestrator_Pending_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mockLocal, _ := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	mockLocal.EXPECT().HasPending(ctx).Return(true, nil)

	pending, err := orch.Pending(ctx)
	require.NoError(t, err)
	require.True(t, pending)
}
