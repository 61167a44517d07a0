// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotenko/claviger/internal/adapter"
	"github.com/dkotenko/claviger/internal/crypto"
	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/store"
	"github.com/dkotenko/claviger/internal/validators"
	"github.com/dkotenko/claviger/models"
)

// fakeLocal — in-memory VaultStore, no mockgen needed for scenario tests
// that care about end state rather than call sequences.
type fakeLocal struct {
	env     models.Envelope
	hasEnv  bool
	pending bool
	creds   models.SyncCredentials
	hasCred bool
}

func (f *fakeLocal) SaveEnvelope(_ context.Context, env models.Envelope) error {
	f.env, f.hasEnv = env, true
	return nil
}

func (f *fakeLocal) LoadEnvelope(_ context.Context) (models.Envelope, error) {
	if !f.hasEnv {
		return models.Envelope{}, store.ErrNotFound
	}
	return f.env, nil
}

func (f *fakeLocal) MarkPending(_ context.Context) error  { f.pending = true; return nil }
func (f *fakeLocal) ClearPending(_ context.Context) error { f.pending = false; return nil }
func (f *fakeLocal) HasPending(_ context.Context) (bool, error) {
	return f.pending, nil
}

func (f *fakeLocal) SaveCredentials(_ context.Context, creds models.SyncCredentials) error {
	f.creds, f.hasCred = creds, true
	return nil
}

func (f *fakeLocal) LoadCredentials(_ context.Context) (models.SyncCredentials, error) {
	if !f.hasCred {
		return models.SyncCredentials{}, store.ErrNotFound
	}
	return f.creds, nil
}

func (f *fakeLocal) DeviceID(_ context.Context) (string, error) { return "device-test", nil }

func (f *fakeLocal) Clear(_ context.Context) error {
	f.hasEnv, f.pending = false, false
	return nil
}

// fakeRemote — in-memory RemoteStore with a switchable failure mode.
type fakeRemote struct {
	env     models.Envelope
	hasEnv  bool
	creds   models.SyncCredentials
	offline bool
	pushes  int
}

func (f *fakeRemote) SetCredentials(creds models.SyncCredentials) { f.creds = creds }
func (f *fakeRemote) Credentials() models.SyncCredentials         { return f.creds }

func (f *fakeRemote) Push(_ context.Context, env models.Envelope) error {
	if f.offline {
		return adapter.ErrNotConfigured
	}
	f.env, f.hasEnv = env, true
	f.pushes++
	return nil
}

func (f *fakeRemote) Pull(_ context.Context) (models.Envelope, error) {
	if f.offline {
		return models.Envelope{}, adapter.ErrNotConfigured
	}
	if !f.hasEnv {
		return models.Envelope{}, adapter.ErrNotFound
	}
	return f.env, nil
}

func (f *fakeRemote) TestConnection(_ context.Context, _ models.SyncCredentials) error {
	if f.offline {
		return adapter.ErrNotFound
	}
	return nil
}

type sessionFixture struct {
	session SessionService
	codec   crypto.EnvelopeService
	local   *fakeLocal
	remote  *fakeRemote
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	codec := crypto.NewEnvelopeServiceWithIterations(2048)
	local := &fakeLocal{}
	remote := &fakeRemote{}
	orch := NewSyncOrchestrator(local, remote, logger.Nop())
	session := NewSessionService(codec, orch, local, remote, 0, logger.Nop())
	return &sessionFixture{session: session, codec: codec, local: local, remote: remote}
}

// unlocked returns a fixture already past first run.
func unlocked(t *testing.T, password string) *sessionFixture {
	t.Helper()
	f := newSessionFixture(t)
	res, err := f.session.Unlock(context.Background(), password)
	require.NoError(t, err)
	require.True(t, res.FirstRun)
	return f
}

// ── Unlock / Lock ────────────────────────────────────────────────────────────

func TestSession_FirstRunCreatesAndPersistsEmptyVault(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	res, err := f.session.Unlock(ctx, "master")
	require.NoError(t, err)
	assert.True(t, res.FirstRun)
	assert.Equal(t, StateUnlocked, f.session.State())

	// The envelope reached both stores and decrypts to an empty vault.
	require.True(t, f.local.hasEnv)
	require.True(t, f.remote.hasEnv)
	plaintext, err := f.codec.Decrypt(f.local.env, "master")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"tables":{}}`, plaintext)
}

func TestSession_UnlockWithWrongPasswordStaysLocked(t *testing.T) {
	f := unlocked(t, "master")
	f.session.Lock()
	require.Equal(t, StateLocked, f.session.State())

	_, err := f.session.Unlock(context.Background(), "not-master")
	require.ErrorIs(t, err, crypto.ErrAuthentication)
	assert.Equal(t, StateLocked, f.session.State())
}

func TestSession_SecondUnlockSeesPersistedData(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	require.NoError(t, f.session.CreateTable(ctx, "logins", "site", "password"))
	_, err := f.session.AddRow(ctx, "logins", "example.com", "hunter2")
	require.NoError(t, err)

	f.session.Lock()
	res, err := f.session.Unlock(ctx, "master")
	require.NoError(t, err)
	assert.False(t, res.FirstRun)

	table, err := f.session.Table("logins")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"example.com", "hunter2"}}, table.Rows)
}

func TestSession_UnlockWhileUnlockedFails(t *testing.T) {
	f := unlocked(t, "master")

	_, err := f.session.Unlock(context.Background(), "master")
	require.ErrorIs(t, err, ErrNotLocked)
}

func TestSession_UnlockRejectsEmptyPassword(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.session.Unlock(context.Background(), "")
	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestSession_LockIsIdempotentAndWipes(t *testing.T) {
	f := unlocked(t, "master")

	f.session.Lock()
	f.session.Lock()
	assert.Equal(t, StateLocked, f.session.State())

	_, err := f.session.TableNames()
	require.ErrorIs(t, err, ErrLocked)
}

func TestSession_AutoLockFires(t *testing.T) {
	codec := crypto.NewEnvelopeServiceWithIterations(2048)
	local := &fakeLocal{}
	remote := &fakeRemote{}
	orch := NewSyncOrchestrator(local, remote, logger.Nop())
	session := NewSessionService(codec, orch, local, remote, 30*time.Millisecond, logger.Nop())

	_, err := session.Unlock(context.Background(), "master")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return session.State() == StateLocked
	}, time.Second, 5*time.Millisecond)
}

// ── Mutations persist through the full pipeline ──────────────────────────────

func TestSession_MutationReencryptsWholeVault(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	before := f.local.env
	require.NoError(t, f.session.CreateTable(ctx, "notes", "title"))
	after := f.local.env

	// Fresh salt and iv per save, never reused.
	assert.NotEqual(t, before.Salt, after.Salt)
	assert.NotEqual(t, before.IV, after.IV)

	plaintext, err := f.codec.Decrypt(after, "master")
	require.NoError(t, err)
	assert.Contains(t, plaintext, `"notes"`)
}

func TestSession_ValidationFailureDoesNotPersist(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	require.NoError(t, f.session.CreateTable(ctx, "notes", "title"))
	before := f.local.env

	err := f.session.CreateTable(ctx, "notes", "title")
	require.ErrorIs(t, err, validators.ErrDuplicateTable)
	assert.Equal(t, before, f.local.env)

	err = f.session.CreateTable(ctx, "other", "col", "col")
	require.ErrorIs(t, err, validators.ErrDuplicateColumn)
	assert.Equal(t, before, f.local.env)
}

func TestSession_MutationWhileLockedFails(t *testing.T) {
	f := unlocked(t, "master")
	f.session.Lock()

	err := f.session.CreateTable(context.Background(), "notes", "title")
	require.ErrorIs(t, err, ErrLocked)
}

func TestSession_TableReturnsDeepCopy(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	require.NoError(t, f.session.CreateTable(ctx, "notes", "title"))
	_, err := f.session.AddRow(ctx, "notes", "original")
	require.NoError(t, err)

	table, err := f.session.Table("notes")
	require.NoError(t, err)
	table.Rows[0][0] = "mutated copy"

	fresh, err := f.session.Table("notes")
	require.NoError(t, err)
	assert.Equal(t, "original", fresh.Rows[0][0])
}

func TestSession_ColumnAndRowOperations(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	require.NoError(t, f.session.CreateTable(ctx, "logins", "site"))
	require.NoError(t, f.session.AddColumn(ctx, "logins", "password"))

	idx, err := f.session.AddRow(ctx, "logins", "example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	require.NoError(t, f.session.UpdateCell(ctx, "logins", 0, "password", "correct horse"))
	require.NoError(t, f.session.RenameColumn(ctx, "logins", "site", "url"))
	require.NoError(t, f.session.DeleteColumn(ctx, "logins", "url"))

	table, err := f.session.Table("logins")
	require.NoError(t, err)
	assert.Equal(t, []string{"password"}, table.Columns)
	assert.Equal(t, [][]string{{"correct horse"}}, table.Rows)

	require.NoError(t, f.session.DeleteRow(ctx, "logins", 0))
	err = f.session.DeleteColumn(ctx, "logins", "password")
	require.ErrorIs(t, err, validators.ErrLastColumn)
}

func TestSession_RenameTableKeepsContents(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	require.NoError(t, f.session.CreateTable(ctx, "old", "col"))
	_, err := f.session.AddRow(ctx, "old", "value")
	require.NoError(t, err)

	require.NoError(t, f.session.RenameTable(ctx, "old", "new"))

	names, err := f.session.TableNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, names)

	table, err := f.session.Table("new")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"value"}}, table.Rows)
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestSession_ChangePasswordInvalidatesOldAndLocks(t *testing.T) {
	f := unlocked(t, "old-password")
	ctx := context.Background()

	require.NoError(t, f.session.CreateTable(ctx, "notes", "title"))
	require.NoError(t, f.session.ChangePassword(ctx, "old-password", "new-password"))
	assert.Equal(t, StateLocked, f.session.State())

	_, err := f.session.Unlock(ctx, "old-password")
	require.ErrorIs(t, err, crypto.ErrAuthentication)

	res, err := f.session.Unlock(ctx, "new-password")
	require.NoError(t, err)
	assert.False(t, res.FirstRun)

	names, err := f.session.TableNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, names)
}

func TestSession_ChangePasswordWithWrongOldPassword(t *testing.T) {
	f := unlocked(t, "master")

	err := f.session.ChangePassword(context.Background(), "wrong", "new-password")
	require.ErrorIs(t, err, crypto.ErrAuthentication)
	assert.Equal(t, StateUnlocked, f.session.State())
}

// ── Offline saves and recovery ───────────────────────────────────────────────

func TestSession_OfflineSaveMarksPendingAndFlushRecovers(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	f.remote.offline = true
	require.NoError(t, f.session.CreateTable(ctx, "notes", "title"))

	pending, err := f.session.PendingSync(ctx)
	require.NoError(t, err)
	assert.True(t, pending)
	require.Equal(t, 1, f.remote.pushes) // only the first-run push landed

	f.remote.offline = false
	require.NoError(t, f.session.SyncNow(ctx))

	pending, err = f.session.PendingSync(ctx)
	require.NoError(t, err)
	assert.False(t, pending)

	plaintext, err := f.codec.Decrypt(f.remote.env, "master")
	require.NoError(t, err)
	assert.Contains(t, plaintext, `"notes"`)
}

// ── CSV / backup ─────────────────────────────────────────────────────────────

func TestSession_CSVRoundTrip(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	in := "site,password\nexample.com,hunter2\n\"quoted,site\",\"p\"\"w\"\n"
	require.NoError(t, f.session.ImportCSV(ctx, "logins", in))

	table, err := f.session.Table("logins")
	require.NoError(t, err)
	assert.Equal(t, []string{"site", "password"}, table.Columns)
	assert.Equal(t, [][]string{
		{"example.com", "hunter2"},
		{"quoted,site", `p"w`},
	}, table.Rows)

	out, err := f.session.ExportCSV("logins")
	require.NoError(t, err)
	assert.Equal(t, strings.Count(in, "\n"), strings.Count(out, "\n"))

	require.NoError(t, f.session.ImportCSV(ctx, "roundtrip", out))
	again, err := f.session.Table("roundtrip")
	require.NoError(t, err)
	assert.Equal(t, table, again)
}

func TestSession_ImportCSVPadsShortRecords(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	require.NoError(t, f.session.ImportCSV(ctx, "t", "a,b,c\n1\n1,2,3,4\n"))

	table, err := f.session.Table("t")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1", "", ""},
		{"1", "2", "3"},
	}, table.Rows)
}

func TestSession_ExportBackupIsPlaintextVault(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	require.NoError(t, f.session.CreateTable(ctx, "notes", "title"))

	backup, err := f.session.ExportBackup()
	require.NoError(t, err)
	assert.Contains(t, backup, `"version": 1`)
	assert.Contains(t, backup, `"notes"`)
}

// ── Sync settings ────────────────────────────────────────────────────────────

func TestSession_SaveSyncSettingsPersistsAndArmsTransport(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()

	creds := models.SyncCredentials{
		Owner: "dkotenko", Repo: "vault", Path: "vault.json", Token: "ghp_token",
	}
	require.NoError(t, f.session.SaveSyncSettings(ctx, creds))

	stored, err := f.session.SyncSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, stored)
	assert.Equal(t, creds, f.remote.Credentials())
}

func TestSession_SaveSyncSettingsRejectsIncompleteTuple(t *testing.T) {
	f := unlocked(t, "master")

	err := f.session.SaveSyncSettings(context.Background(), models.SyncCredentials{Owner: "x"})
	require.ErrorIs(t, err, ErrIncompleteCredentials)
}

func TestSession_TestSyncSettings(t *testing.T) {
	f := unlocked(t, "master")
	ctx := context.Background()
	creds := models.SyncCredentials{
		Owner: "dkotenko", Repo: "vault", Path: "vault.json", Token: "ghp_token",
	}

	require.NoError(t, f.session.TestSyncSettings(ctx, creds))

	f.remote.offline = true
	require.Error(t, f.session.TestSyncSettings(ctx, creds))

	err := f.session.TestSyncSettings(ctx, models.SyncCredentials{})
	require.ErrorIs(t, err, ErrIncompleteCredentials)
}
