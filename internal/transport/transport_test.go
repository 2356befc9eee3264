package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msarvaro/gastro-sub000/internal/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestDoAttachesCredentialHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := newTestStore(t)
	if err := store.Save(&session.Credentials{Token: "tok123", Role: "admin", BusinessID: "biz7"}); err != nil {
		t.Fatal(err)
	}

	c := New(srv.URL, store)
	resp, err := c.Do(context.Background(), http.MethodPost, "/api/orders", map[string]string{"a": "b"})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.JSON {
		t.Error("expected JSON response")
	}
	if got.Get("Authorization") != "Bearer tok123" {
		t.Errorf("Authorization = %q", got.Get("Authorization"))
	}
	if got.Get("X-Business-ID") != "biz7" {
		t.Errorf("X-Business-ID = %q", got.Get("X-Business-ID"))
	}
	if got.Get("X-Request-ID") == "" {
		t.Error("mutation missing X-Request-ID")
	}
	if got.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", got.Get("Content-Type"))
	}
}

func TestGetCarriesNoRequestID(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	if _, err := c.Do(context.Background(), http.MethodGet, "/api/orders", nil); err != nil {
		t.Fatal(err)
	}
	if got.Get("X-Request-ID") != "" {
		t.Errorf("GET should not carry a request id, got %q", got.Get("X-Request-ID"))
	}
}

func TestUnauthorizedClearsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestStore(t)
	if err := store.Save(&session.Credentials{Token: "stale", Role: "waiter"}); err != nil {
		t.Fatal(err)
	}

	c := New(srv.URL, store)
	_, err := c.Do(context.Background(), http.MethodGet, "/api/orders", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}

	creds, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if creds != nil {
		t.Error("credentials should be cleared after a 401")
	}

	// a second 401 must behave the same with nothing left to clear
	_, err = c.Do(context.Background(), http.MethodGet, "/api/orders", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("repeated 401: err = %v, want ErrUnauthorized", err)
	}
}

func TestBusinessMarkerMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Business not selected"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	_, err := c.Do(context.Background(), http.MethodGet, "/api/inventory", nil)
	if !errors.Is(err, ErrBusinessRequired) {
		t.Fatalf("err = %v, want ErrBusinessRequired", err)
	}
}

func TestValidationMarkerMapsToFieldError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "username already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	_, err := c.Do(context.Background(), http.MethodPost, "/api/users", map[string]string{"username": "taken"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Field != "username" {
		t.Errorf("field = %q, want username", verr.Field)
	}
}

func TestUnrecognizedFailureKeepsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	_, err := c.Do(context.Background(), http.MethodGet, "/api/orders", nil)

	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if rerr.Status != http.StatusInternalServerError || rerr.Body != "boom" {
		t.Errorf("got status=%d body=%q", rerr.Status, rerr.Body)
	}
}
