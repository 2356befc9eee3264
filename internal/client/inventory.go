package client

import (
	"context"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

type InventoryClient struct {
	t    *transport.Client
	base string
}

type InventoryInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	MinQuantity float64 `json:"min_quantity"`
}

func (c *InventoryClient) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := c.t.GetList(ctx, c.base+"/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *InventoryClient) Create(ctx context.Context, input InventoryInput) error {
	return c.t.PostJSON(ctx, c.base+"/inventory", input, nil)
}

func (c *InventoryClient) Update(ctx context.Context, id string, input InventoryInput) error {
	return c.t.PutJSON(ctx, c.base+"/inventory/"+id, input, nil)
}

// Adjust writes a new on-hand quantity, the kitchen's stock-take action.
func (c *InventoryClient) Adjust(ctx context.Context, id string, quantity float64) error {
	payload := map[string]float64{"quantity": quantity}
	return c.t.PutJSON(ctx, c.base+"/inventory/"+id, payload, nil)
}

func (c *InventoryClient) Delete(ctx context.Context, id string) error {
	return c.t.Delete(ctx, c.base+"/inventory/"+id)
}
