package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/session"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

func newTestClient(t *testing.T, role string, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(&session.Credentials{Token: "tok", Role: role, BusinessID: "b1"}); err != nil {
		t.Fatal(err)
	}
	return New(transport.New(srv.URL, store), role), srv
}

func TestCreateOrderComputesTotal(t *testing.T) {
	var body map[string]interface{}
	c, _ := newTestClient(t, models.RoleWaiter, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/waiter/orders" {
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Error(err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"o1","status":"new"}`))
	}))

	created, err := c.Orders.Create(context.Background(), CreateOrderInput{
		TableID: "t1",
		Items: []models.OrderItem{
			{Name: "Steak", Quantity: 1, Price: 5000},
			{Name: "Cola", Quantity: 2, Price: 500},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "o1" {
		t.Errorf("id = %q", created.ID)
	}
	if got := body["total"].(float64); got != 6000 {
		t.Errorf("posted total = %v, want 6000", got)
	}
}

func TestSetStatusPath(t *testing.T) {
	var gotPath, gotStatus string
	c, _ := newTestClient(t, models.RoleCook, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		gotStatus = payload["status"]
		w.Write([]byte(`{}`))
	}))

	if err := c.Orders.SetStatus(context.Background(), "o9", models.OrderStatusReady); err != nil {
		t.Fatal(err)
	}
	if gotPath != "PUT /api/kitchen/orders/o9/status" {
		t.Errorf("path = %q", gotPath)
	}
	if gotStatus != models.OrderStatusReady {
		t.Errorf("status = %q", gotStatus)
	}
}

func TestListPassesQueryAndDecodesEnvelope(t *testing.T) {
	c, _ := newTestClient(t, models.RoleWaiter, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != models.OrderStatusNew {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"o1","status":"new"}]}`))
	}))

	params := url.Values{}
	params.Set("status", models.OrderStatusNew)
	orders, err := c.Orders.List(context.Background(), params)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || orders[0].ID != "o1" {
		t.Errorf("got %+v", orders)
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"role":"waiter"}`))
	}))
	defer srv.Close()

	store, err := session.NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Login(context.Background(), transport.New(srv.URL, store), "u", "p", false); err == nil {
		t.Error("expected an error when the login reply has no token")
	}
}
