package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/models"
)

func newTestVaultStore(t *testing.T) (*vaultStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	l := logger.Nop()
	s := &vaultStore{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return s, mock, db
}

func TestSaveEnvelope_UpsertsSingleSlot(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	env := models.Envelope{Salt: "c2FsdA==", IV: "aXY=", Ciphertext: "Y3Q="}
	payload, err := json.Marshal(env)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO kv").
		WithArgs(keyEnvelope, payload).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = s.SaveEnvelope(context.Background(), env)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadEnvelope_ReturnsSavedEnvelope(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	env := models.Envelope{Salt: "c2FsdA==", IV: "aXY=", Ciphertext: "Y3Q="}
	payload, err := json.Marshal(env)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT value").
		WithArgs(keyEnvelope).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(payload))

	got, err := s.LoadEnvelope(context.Background())
	require.NoError(t, err)
	assert.Equal(t, env, got)
}

func TestLoadEnvelope_AbsentIsNotFound(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(keyEnvelope).
		WillReturnError(sql.ErrNoRows)

	_, err := s.LoadEnvelope(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingFlag_MarkHasClear(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs(keyPending, []byte("1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.MarkPending(ctx))

	mock.ExpectQuery("SELECT value").
		WithArgs(keyPending).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("1")))
	pending, err := s.HasPending(ctx)
	require.NoError(t, err)
	assert.True(t, pending)

	mock.ExpectExec("DELETE FROM kv").
		WithArgs(keyPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.ClearPending(ctx))

	mock.ExpectQuery("SELECT value").
		WithArgs(keyPending).
		WillReturnError(sql.ErrNoRows)
	pending, err = s.HasPending(ctx)
	require.NoError(t, err)
	assert.False(t, pending)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasPending_QueryErrorPropagates(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(keyPending).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.HasPending(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCredentials_RoundTrip(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	creds := models.SyncCredentials{
		Owner: "alice",
		Repo:  "vault-backup",
		Path:  "vault.json",
		Token: "ghp_testtoken",
	}
	payload, err := json.Marshal(creds)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO kv").
		WithArgs(keyCredentials, payload).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.SaveCredentials(context.Background(), creds))

	mock.ExpectQuery("SELECT value").
		WithArgs(keyCredentials).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(payload))

	got, err := s.LoadCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestDeviceID_GeneratedOnceThenStable(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	ctx := context.Background()

	// first call: nothing stored yet, a fresh id gets persisted
	mock.ExpectQuery("SELECT value").
		WithArgs(keyDeviceID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO kv").
		WithArgs(keyDeviceID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := s.DeviceID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// second call: the stored id is returned as-is
	mock.ExpectQuery("SELECT value").
		WithArgs(keyDeviceID).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(id)))

	again, err := s.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestClear_RemovesEnvelopeAndPendingTogether(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM kv").
		WithArgs(keyEnvelope).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM kv").
		WithArgs(keyPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Clear(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_RollsBackOnError(t *testing.T) {
	s, mock, db := newTestVaultStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM kv").
		WithArgs(keyEnvelope).
		WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := s.Clear(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
