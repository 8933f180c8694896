package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dserbyn/regconsole/internal/logging"
)

// TokenSource supplies the bearer credential for outgoing requests.
// An empty token means the request goes out unauthenticated (the
// login call itself, for example).
type TokenSource interface {
	Token() string
}

// Transport performs JSON round-trips against the registry backend.
// Each request carries a generated X-Request-Id so a failing call can
// be correlated between console logs and server logs.
type Transport struct {
	base   string
	hc     *http.Client
	tokens TokenSource
	log    logging.Logger
}

// NewTransport builds a Transport rooted at baseURL. tokens may be nil
// for a client that only ever performs unauthenticated calls.
func NewTransport(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Transport {
	return &Transport{
		base:   strings.TrimRight(baseURL, "/"),
		hc:     &http.Client{Timeout: timeout},
		tokens: tokens,
		log:    log,
	}
}

// get performs a GET and decodes the response into out (unless out is nil).
func (t *Transport) get(ctx context.Context, path string, query url.Values, out any) error {
	return t.do(ctx, http.MethodGet, path, query, nil, out)
}

func (t *Transport) post(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPost, path, nil, body, out)
}

func (t *Transport) put(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPut, path, nil, body, out)
}

func (t *Transport) delete(ctx context.Context, path string) error {
	return t.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (t *Transport) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := t.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.hc.Do(req)
	if err != nil {
		t.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return t.statusError(ctx, resp, method, path, requestID)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s %s response: %v", ErrUnavailable, method, path, err)
	}
	return nil
}

// statusError converts a non-2xx response into a normalized error.
// Conflict bodies are decoded so field-level details survive; any other
// server-supplied message is carried verbatim as the error text.
func (t *Transport) statusError(ctx context.Context, resp *http.Response, method, path, requestID string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	t.log.Warn(ctx, "request rejected",
		"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		ce := &ConflictError{}
		if err := json.Unmarshal(raw, ce); err == nil && (ce.Field != "" || ce.Message != "") {
			return ce
		}
		return &ConflictError{Message: strings.TrimSpace(string(raw))}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("server error: %s", msg)
}
