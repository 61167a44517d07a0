package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/models"
)

const testToken = "ghp_valid_token"

// fakeRemote is an in-memory single-file contents API used to exercise
// the client end to end over real HTTP.
type fakeRemote struct {
	mu       sync.Mutex
	content  string // base64 payload as stored
	sha      string
	exists   bool
	sequence int
	failPuts bool
}

func (f *fakeRemote) router() http.Handler {
	r := chi.NewRouter()

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Authorization") != "Bearer "+testToken {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next(w, req)
		}
	}

	r.Get("/repos/{owner}/{repo}", authed(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r.Get("/repos/{owner}/{repo}/contents/{path}", authed(func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"content": f.content,
			"sha":     f.sha,
		})
	}))

	r.Put("/repos/{owner}/{repo}/contents/{path}", authed(func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Message string `json:"message"`
			Content string `json:"content"`
			SHA     string `json:"sha"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		if f.failPuts {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		if f.exists && body.SHA != f.sha {
			// stale or missing revision marker
			w.WriteHeader(http.StatusConflict)
			return
		}

		f.sequence++
		f.content = body.Content
		f.sha = fmt.Sprintf("sha-%d", f.sequence)
		f.exists = true
		w.WriteHeader(http.StatusCreated)
	}))

	return r
}

func newTestRemote(t *testing.T) (*fakeRemote, RemoteStore) {
	t.Helper()

	fake := &fakeRemote{}
	srv := httptest.NewServer(fake.router())
	t.Cleanup(srv.Close)

	store := NewRemoteStore(RemoteConfig{
		Endpoint: srv.URL,
		DeviceID: "device-test",
	}, logger.Nop())
	store.SetCredentials(models.SyncCredentials{
		Owner: "alice",
		Repo:  "vault-backup",
		Path:  "vault.json",
		Token: testToken,
	})

	return fake, store
}

func testEnvelope(tag string) models.Envelope {
	return models.Envelope{
		Salt:       base64.StdEncoding.EncodeToString([]byte("salt-" + tag)),
		IV:         base64.StdEncoding.EncodeToString([]byte("iv-" + tag)),
		Ciphertext: base64.StdEncoding.EncodeToString([]byte("ciphertext-" + tag)),
	}
}

func TestPull_NotConfigured(t *testing.T) {
	store := NewRemoteStore(RemoteConfig{Endpoint: "http://127.0.0.1:0"}, logger.Nop())

	_, err := store.Pull(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestPull_AbsentRemoteIsNotFound(t *testing.T) {
	_, store := newTestRemote(t)

	_, err := store.Pull(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPushThenPull_RoundTrip(t *testing.T) {
	_, store := newTestRemote(t)
	ctx := context.Background()

	env := testEnvelope("one")
	require.NoError(t, store.Push(ctx, env))

	got, err := store.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, env, got)
}

func TestPush_SuppliesCurrentRevisionOnUpdate(t *testing.T) {
	fake, store := newTestRemote(t)
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, testEnvelope("one")))
	// second push must refetch the new sha; the fake answers 409 to a
	// stale marker, so success proves the handshake happened
	require.NoError(t, store.Push(ctx, testEnvelope("two")))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, 2, fake.sequence)
}

func TestPush_ConflictSurfacesAsErrConflict(t *testing.T) {
	fake, store := newTestRemote(t)
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, testEnvelope("one")))

	fake.mu.Lock()
	fake.failPuts = true
	fake.mu.Unlock()

	err := store.Push(ctx, testEnvelope("two"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPush_BadTokenIsUnauthorized(t *testing.T) {
	_, store := newTestRemote(t)

	creds := store.Credentials()
	creds.Token = "ghp_wrong"
	store.SetCredentials(creds)

	err := store.Push(context.Background(), testEnvelope("one"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPull_DecodesLineWrappedContent(t *testing.T) {
	fake, store := newTestRemote(t)

	env := testEnvelope("wrapped")
	payload, err := json.Marshal(env)
	require.NoError(t, err)

	encoded := base64.StdEncoding.EncodeToString(payload)
	// the contents API wraps base64 at 60 columns
	wrapped := ""
	for i := 0; i < len(encoded); i += 60 {
		end := i + 60
		if end > len(encoded) {
			end = len(encoded)
		}
		wrapped += encoded[i:end] + "\n"
	}

	fake.mu.Lock()
	fake.content = wrapped
	fake.sha = "sha-wrapped"
	fake.exists = true
	fake.mu.Unlock()

	got, err := store.Pull(context.Background())
	require.NoError(t, err)
	assert.Equal(t, env, got)
}

func TestTestConnection(t *testing.T) {
	_, store := newTestRemote(t)
	ctx := context.Background()

	good := models.SyncCredentials{Owner: "alice", Repo: "vault-backup", Path: "vault.json", Token: testToken}
	assert.NoError(t, store.TestConnection(ctx, good))

	bad := good
	bad.Token = "ghp_wrong"
	assert.ErrorIs(t, store.TestConnection(ctx, bad), ErrUnauthorized)

	incomplete := models.SyncCredentials{Owner: "alice"}
	assert.ErrorIs(t, store.TestConnection(ctx, incomplete), ErrNotConfigured)
}
