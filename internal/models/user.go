package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`   // "admin", "manager", "waiter", "cook", "client"
	Status    string    `json:"status"` // "active", "inactive", "blocked"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the whoami response for the signed-in account.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Business string `json:"business,omitempty"`
}
