// Package supabase implements the remote store adapter against a
// PostgREST-style REST surface: stateless shape translation, transport, and
// failure classification. Nothing here retains entity data between calls.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

const (
	defaultTimeout = 15 * time.Second

	preferRepresentation = "return=representation"
	preferMerge          = "return=representation,resolution=merge-duplicates"
)

// Config captures the settings for reaching the remote store.
type Config struct {
	// Endpoint is the REST base URL, e.g. https://<project>.supabase.co/rest/v1.
	Endpoint string
	// APIKey is the static bearer credential. The adapter treats itself as
	// disabled unless the key is well-formed (JWT-shaped and long enough).
	APIKey  string
	Timeout time.Duration
}

// Client talks to the remote store. It implements ports.RemoteStore.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

// NewClient returns a Client. A default timeout is applied when none is set.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Enabled reports whether a well-formed credential is present. A missing or
// malformed key means local-only mode: writes no-op and fetches are skipped.
func (c *Client) Enabled() bool {
	k := c.cfg.APIKey
	return k != "" && strings.HasPrefix(k, "eyJ") && len(k) > 50
}

// do issues one request and classifies the outcome. The returned error is
// always one of the domain remote error classes (wrapped with detail); the
// response body is returned on success.
func (c *Client) do(ctx context.Context, method, path, prefer string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: encode payload: %v", domain.ErrUnexpectedStatus, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrUnexpectedStatus, err)
	}
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("remote request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrNetworkFailure, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	return nil, c.classify(method, path, resp.StatusCode, raw)
}

// classify maps a non-success response to its failure class. A 401 or a
// row-level-security complaint means the store rejected the credential; a
// 404 means the referenced table or resource is missing remotely.
func (c *Client) classify(method, path string, status int, body []byte) error {
	text := string(body)

	var class error
	switch {
	case status == http.StatusUnauthorized || strings.Contains(text, "row-level security"):
		class = domain.ErrPermissionDenied
	case status == http.StatusNotFound:
		class = domain.ErrResourceNotFound
	default:
		class = domain.ErrUnexpectedStatus
	}

	c.log.Error().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Str("reason", domain.FailureReason(class)).
		Str("body", truncate(text, 200)).
		Msg("remote request rejected")

	return fmt.Errorf("%w: status %d", class, status)
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	raw, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrUnexpectedStatus, path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
