package models

import "time"

type Supplier struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Categories []string  `json:"categories"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	Status     string    `json:"status"` // "active", "paused", "archived"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
