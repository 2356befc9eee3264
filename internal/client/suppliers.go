package client

import (
	"context"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

type SuppliersClient struct {
	t    *transport.Client
	base string
}

type SupplierInput struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Address    string   `json:"address"`
}

func (c *SuppliersClient) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := c.t.GetList(ctx, c.base+"/suppliers", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (c *SuppliersClient) Create(ctx context.Context, input SupplierInput) error {
	return c.t.PostJSON(ctx, c.base+"/suppliers", input, nil)
}

func (c *SuppliersClient) Update(ctx context.Context, id string, input SupplierInput) error {
	return c.t.PutJSON(ctx, c.base+"/suppliers/"+id, input, nil)
}

func (c *SuppliersClient) SetStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"status": status}
	return c.t.PutJSON(ctx, c.base+"/suppliers/"+id+"/status", payload, nil)
}

func (c *SuppliersClient) Delete(ctx context.Context, id string) error {
	return c.t.Delete(ctx, c.base+"/suppliers/"+id)
}
