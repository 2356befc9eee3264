package models

type Table struct {
	ID             string `json:"id"`
	Number         int    `json:"number"`
	Seats          int    `json:"seats"`
	Status         string `json:"status"` // "free", "occupied", "reserved"
	CurrentOrderID string `json:"current_order_id,omitempty"`
}
