package client

import (
	"context"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

type RequestsClient struct {
	t    *transport.Client
	base string
}

type RequestInput struct {
	Branch     string   `json:"branch"`
	Items      []string `json:"items"`
	SupplierID string   `json:"supplier_id"`
	Priority   string   `json:"priority"`
	Comment    string   `json:"comment,omitempty"`
}

func (c *RequestsClient) List(ctx context.Context) ([]models.SupplyRequest, error) {
	var requests []models.SupplyRequest
	if err := c.t.GetList(ctx, c.base+"/requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *RequestsClient) Create(ctx context.Context, input RequestInput) error {
	return c.t.PostJSON(ctx, c.base+"/requests", input, nil)
}

func (c *RequestsClient) SetStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"status": status}
	return c.t.PutJSON(ctx, c.base+"/requests/"+id+"/status", payload, nil)
}

// Approve moves a pending request into the active state.
func (c *RequestsClient) Approve(ctx context.Context, id string) error {
	return c.SetStatus(ctx, id, models.RequestStatusActive)
}

func (c *RequestsClient) Reject(ctx context.Context, id string) error {
	return c.SetStatus(ctx, id, models.RequestStatusRejected)
}

func (c *RequestsClient) Complete(ctx context.Context, id string) error {
	return c.SetStatus(ctx, id, models.RequestStatusCompleted)
}

func (c *RequestsClient) Delete(ctx context.Context, id string) error {
	return c.t.Delete(ctx, c.base+"/requests/"+id)
}
