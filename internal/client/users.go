package client

import (
	"context"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

type UsersClient struct {
	t    *transport.Client
	base string
}

type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

func (c *UsersClient) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.t.GetList(ctx, c.base+"/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UsersClient) Create(ctx context.Context, input UserInput) error {
	return c.t.PostJSON(ctx, c.base+"/users", input, nil)
}

func (c *UsersClient) Update(ctx context.Context, id string, input UserInput) error {
	return c.t.PutJSON(ctx, c.base+"/users/"+id, input, nil)
}

func (c *UsersClient) SetStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"status": status}
	return c.t.PutJSON(ctx, c.base+"/users/"+id+"/status", payload, nil)
}

func (c *UsersClient) Delete(ctx context.Context, id string) error {
	return c.t.Delete(ctx, c.base+"/users/"+id)
}
