package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lucsky/cuid"
	"github.com/msarvaro/gastro-sub000/internal/session"
)

// Response is a classified backend reply. JSON reports whether the body was
// declared application/json; otherwise Body is the raw text.
type Response struct {
	Status int
	JSON   bool
	Body   []byte
}

// Client wraps every backend call: it attaches the bearer token and business
// scope from the credential store, stamps mutations with a request id, and
// turns non-2xx outcomes into the typed failures in errors.go. It never
// panics past its boundary.
type Client struct {
	baseURL string
	http    *http.Client
	store   *session.Store
}

func New(baseURL string, store *session.Store) *Client {
	return &Client{
		// no per-request timeout: a hung request simply delays the next
		// render until it resolves or the caller's context ends
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		store:   store,
	}
}

func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-ID", cuid.New())
	}

	creds, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	if creds != nil {
		if creds.Token != "" {
			req.Header.Set("Authorization", "Bearer "+creds.Token)
		}
		if creds.BusinessID != "" {
			req.Header.Set("X-Business-ID", creds.BusinessID)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network failure on %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := c.classify(resp.StatusCode, data); err != nil {
		return nil, err
	}

	return &Response{
		Status: resp.StatusCode,
		JSON:   strings.Contains(resp.Header.Get("Content-Type"), "application/json"),
		Body:   data,
	}, nil
}

func (c *Client) classify(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	if status == http.StatusUnauthorized {
		// clearing is idempotent, so repeated 401s stay harmless
		if err := c.store.Clear(); err != nil {
			return fmt.Errorf("%w (failed to clear credentials: %v)", ErrUnauthorized, err)
		}
		return ErrUnauthorized
	}

	text := strings.ToLower(string(body))

	if status == http.StatusBadRequest {
		for _, marker := range businessMarkers {
			if strings.Contains(text, marker) {
				return ErrBusinessRequired
			}
		}
	}

	if status >= 400 && status < 500 {
		for _, v := range validationMarkers {
			if strings.Contains(text, v.marker) {
				return &ValidationError{Field: v.field, Message: v.message}
			}
		}
	}

	return &RequestError{Status: status, Body: string(body)}
}

// GetJSON fetches path and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// GetList fetches path and decodes a collection, tolerating both the bare
// array and the {"items": [...]} envelope the backend historically mixed.
func (c *Client) GetList(ctx context.Context, path string, out interface{}) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := DecodeList(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode list from %s: %w", path, err)
	}
	return nil
}

// PostJSON sends body and decodes the reply into out when out is non-nil.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.mutate(ctx, http.MethodPost, path, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.mutate(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) mutate(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || !resp.JSON || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
