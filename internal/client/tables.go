package client

import (
	"context"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

type TablesClient struct {
	t    *transport.Client
	base string
}

func (c *TablesClient) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := c.t.GetList(ctx, c.base+"/tables", &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *TablesClient) SetStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"status": status}
	return c.t.PutJSON(ctx, c.base+"/tables/"+id, payload, nil)
}
