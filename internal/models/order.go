package models

import "time"

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID          string      `json:"id"`
	TableID     string      `json:"table_id"`
	TableNumber int         `json:"table_number,omitempty"`
	Items       []OrderItem `json:"items"`
	Status      string      `json:"status"` // e.g., "new", "preparing", "served", "completed"
	Total       float64     `json:"total"`
	Comment     string      `json:"comment,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CancelledAt *time.Time  `json:"cancelled_at,omitempty"`
}

// ComputeTotal sums item price x quantity. The display value is computed
// client-side; the server's stored total stays authoritative for history.
func (o Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ClosedAt is the completion or cancellation timestamp, whichever is set.
// History views sort on it descending.
func (o Order) ClosedAt() time.Time {
	if o.CompletedAt != nil {
		return *o.CompletedAt
	}
	if o.CancelledAt != nil {
		return *o.CancelledAt
	}
	return time.Time{}
}
