package client

import (
	"context"
	"fmt"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

// Client bundles the per-resource clients for one role. Each resource client
// delegates to the shared transport and surfaces its failures unchanged: no
// retry, no backoff, no optimistic state.
type Client struct {
	Orders    *OrdersClient
	Tables    *TablesClient
	Inventory *InventoryClient
	Suppliers *SuppliersClient
	Requests  *RequestsClient
	Menu      *MenuClient
	Users     *UsersClient

	t    *transport.Client
	role string
	base string
}

func New(t *transport.Client, role string) *Client {
	base := "/api/" + role
	if role == models.RoleCook {
		// the cook role is served under the kitchen surface
		base = "/api/kitchen"
	}
	return &Client{
		Orders:    &OrdersClient{t: t, base: base},
		Tables:    &TablesClient{t: t, base: base},
		Inventory: &InventoryClient{t: t, base: base},
		Suppliers: &SuppliersClient{t: t, base: base},
		Requests:  &RequestsClient{t: t, base: base},
		Menu:      &MenuClient{t: t, base: "/api/menu"},
		Users:     &UsersClient{t: t, base: "/api/admin"},
		t:         t,
		role:      role,
		base:      base,
	}
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login authenticates against the backend. It is the only unauthenticated call.
func Login(ctx context.Context, t *transport.Client, username, password string, remember bool) (*LoginResponse, error) {
	payload := map[string]interface{}{
		"username": username,
		"password": password,
		"remember": remember,
	}
	var resp LoginResponse
	if err := t.PostJSON(ctx, "/api/login", payload, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}
	return &resp, nil
}

// Whoami resolves the signed-in account through the profile endpoint. The
// console never decodes the token itself.
func (c *Client) Whoami(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.t.GetJSON(ctx, c.base+"/profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Stats fetches the aggregate dashboard snapshot for the role.
func (c *Client) Stats(ctx context.Context) (*models.Stats, error) {
	path := c.base + "/dashboard"
	if c.role == models.RoleAdmin {
		path = c.base + "/stats"
	}
	var stats models.Stats
	if err := c.t.GetJSON(ctx, path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
