package models

import "time"

type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	MinQuantity float64   `json:"min_quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DerivedStatus classifies stock against the minimum threshold:
// below half the minimum is critical, below the minimum is low.
func (i InventoryItem) DerivedStatus() string {
	switch {
	case i.Quantity < i.MinQuantity/2:
		return InventoryStatusCritical
	case i.Quantity < i.MinQuantity:
		return InventoryStatusLow
	default:
		return InventoryStatusOK
	}
}
