package client

import (
	"context"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

type MenuClient struct {
	t    *transport.Client
	base string
}

type MenuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	CategoryID  string  `json:"category_id"`
}

func (c *MenuClient) Items(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.t.GetList(ctx, c.base+"/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *MenuClient) CreateItem(ctx context.Context, input MenuItemInput) error {
	return c.t.PostJSON(ctx, c.base+"/items", input, nil)
}

func (c *MenuClient) UpdateItem(ctx context.Context, id string, input MenuItemInput) error {
	return c.t.PutJSON(ctx, c.base+"/items/"+id, input, nil)
}

func (c *MenuClient) SetAvailability(ctx context.Context, id string, available bool) error {
	payload := map[string]bool{"available": available}
	return c.t.PutJSON(ctx, c.base+"/items/"+id+"/availability", payload, nil)
}

func (c *MenuClient) DeleteItem(ctx context.Context, id string) error {
	return c.t.Delete(ctx, c.base+"/items/"+id)
}

func (c *MenuClient) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.t.GetList(ctx, c.base+"/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *MenuClient) CreateCategory(ctx context.Context, name, description string) error {
	payload := map[string]string{"name": name, "description": description}
	return c.t.PostJSON(ctx, c.base+"/categories", payload, nil)
}

func (c *MenuClient) DeleteCategory(ctx context.Context, id string) error {
	return c.t.Delete(ctx, c.base+"/categories/"+id)
}
