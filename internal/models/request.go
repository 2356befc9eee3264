package models

import "time"

// SupplyRequest is a restock request raised by a branch against a supplier.
type SupplyRequest struct {
	ID          string     `json:"id"`
	Branch      string     `json:"branch"`
	Items       []string   `json:"items"`
	SupplierID  string     `json:"supplier_id"`
	Priority    string     `json:"priority"`
	Comment     string     `json:"comment,omitempty"`
	Status      string     `json:"status"` // "pending", "active", "completed", "rejected"
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (r SupplyRequest) ClosedAt() time.Time {
	if r.CompletedAt != nil {
		return *r.CompletedAt
	}
	return time.Time{}
}
