// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/models"
)

// RemoteConfig carries transport-level settings for the remote store
// client. The credential tuple is supplied separately via
// [RemoteStore.SetCredentials] because it is user-managed state, not
// deployment configuration.
type RemoteConfig struct {
	Endpoint string
	Timeout  time.Duration
	DeviceID string
}

type githubRemoteStore struct {
	client   *resty.Client
	deviceID string
	logger   *logger.Logger

	mu    sync.RWMutex
	creds models.SyncCredentials
}

// NewRemoteStore constructs a [RemoteStore] talking to a
// GitHub-contents-style API at cfg.Endpoint.
func NewRemoteStore(cfg RemoteConfig, log *logger.Logger) RemoteStore {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.github.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/vnd.github+json")

	return &githubRemoteStore{
		client:   cli,
		deviceID: cfg.DeviceID,
		logger:   log,
	}
}

func (s *githubRemoteStore) SetCredentials(creds models.SyncCredentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
}

func (s *githubRemoteStore) Credentials() models.SyncCredentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// contentResponse is the GET body of the contents API: the file payload
// as base64 plus its revision marker.
type contentResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

// putRequest is the PUT body. SHA must carry the current revision when
// updating an existing file; omitting it on update is rejected by the
// server, which is exactly the optimistic-concurrency handshake we want.
type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

func (s *githubRemoteStore) Pull(ctx context.Context) (models.Envelope, error) {
	creds := s.Credentials()
	if !creds.Complete() {
		return models.Envelope{}, ErrNotConfigured
	}

	resp, err := s.fetch(ctx, creds)
	if err != nil {
		return models.Envelope{}, err
	}

	raw, err := decodeContent(resp.Content)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("decode remote content: %w", err)
	}

	var env models.Envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("decode remote envelope: %w", err)
	}

	s.logger.Debug().Str("func", "githubRemoteStore.Pull").Str("revision", resp.SHA).Msg("pulled remote envelope")
	return env, nil
}

func (s *githubRemoteStore) Push(ctx context.Context, env models.Envelope) error {
	creds := s.Credentials()
	if !creds.Complete() {
		return ErrNotConfigured
	}

	// Refresh the revision marker right before writing. A stale marker
	// from a cached Pull would make every second push conflict.
	revision := ""
	current, err := s.fetch(ctx, creds)
	switch {
	case err == nil:
		revision = current.SHA
	case errors.Is(err, ErrNotFound):
		// first push, the file does not exist yet
	default:
		return err
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	message := "claviger: vault update"
	if s.deviceID != "" {
		message = fmt.Sprintf("claviger: vault update from device %s", s.deviceID)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+creds.Token).
		SetBody(putRequest{
			Message: message,
			Content: base64.StdEncoding.EncodeToString(payload),
			SHA:     revision,
			Branch:  creds.Branch,
		}).
		Put(contentsPath(creds))
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	s.logger.Debug().Str("func", "githubRemoteStore.Push").Str("base_revision", revision).Msg("pushed envelope to remote")
	return nil
}

func (s *githubRemoteStore) TestConnection(ctx context.Context, creds models.SyncCredentials) error {
	if creds.Owner == "" || creds.Repo == "" || creds.Token == "" {
		return ErrNotConfigured
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+creds.Token).
		Get(fmt.Sprintf("/repos/%s/%s", creds.Owner, creds.Repo))
	if err != nil {
		return fmt.Errorf("test connection request: %w", err)
	}

	return mapHTTPError(resp)
}

// fetch retrieves the current remote file and its revision marker.
func (s *githubRemoteStore) fetch(ctx context.Context, creds models.SyncCredentials) (contentResponse, error) {
	req := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+creds.Token)
	if creds.Branch != "" {
		req.SetQueryParam("ref", creds.Branch)
	}

	resp, err := req.Get(contentsPath(creds))
	if err != nil {
		return contentResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return contentResponse{}, err
	}

	var cr contentResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return contentResponse{}, fmt.Errorf("decode pull response: %w", err)
	}
	return cr, nil
}

func contentsPath(creds models.SyncCredentials) string {
	return fmt.Sprintf("/repos/%s/%s/contents/%s", creds.Owner, creds.Repo, creds.Path)
}

// decodeContent handles the line-wrapped base64 the contents API emits.
func decodeContent(content string) ([]byte, error) {
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(content)
	return base64.StdEncoding.DecodeString(cleaned)
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		// 422 is what the contents API answers to a missing or stale sha
		return ErrConflict
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
