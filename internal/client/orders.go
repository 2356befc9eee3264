package client

import (
	"context"
	"net/url"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

type OrdersClient struct {
	t    *transport.Client
	base string
}

type CreateOrderInput struct {
	TableID string             `json:"table_id"`
	Items   []models.OrderItem `json:"items"`
	Comment string             `json:"comment,omitempty"`
	Total   float64            `json:"total"`
}

func (c *OrdersClient) List(ctx context.Context, params url.Values) ([]models.Order, error) {
	path := c.base + "/orders"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var orders []models.Order
	if err := c.t.GetList(ctx, path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// History lists completed and cancelled orders.
func (c *OrdersClient) History(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.t.GetList(ctx, c.base+"/orders/history", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *OrdersClient) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.t.GetJSON(ctx, c.base+"/orders/"+id, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create computes the display total from the items before posting; the
// server recomputes and stores the authoritative value.
func (c *OrdersClient) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	order := models.Order{Items: input.Items}
	input.Total = order.ComputeTotal()

	var created models.Order
	if err := c.t.PostJSON(ctx, c.base+"/orders", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *OrdersClient) Update(ctx context.Context, id string, input CreateOrderInput) error {
	order := models.Order{Items: input.Items}
	input.Total = order.ComputeTotal()
	return c.t.PutJSON(ctx, c.base+"/orders/"+id, input, nil)
}

func (c *OrdersClient) SetStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"status": status}
	return c.t.PutJSON(ctx, c.base+"/orders/"+id+"/status", payload, nil)
}

func (c *OrdersClient) Delete(ctx context.Context, id string) error {
	return c.t.Delete(ctx, c.base+"/orders/"+id)
}
