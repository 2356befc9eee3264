package factories

import (
	"math/rand"
	"time"

	"github.com/lucsky/cuid"
	"github.com/msarvaro/gastro-sub000/internal/models"
)

var inventoryCategories = []string{"meat", "vegetables", "dairy", "drinks", "dry goods"}
var inventoryUnits = []string{"kg", "l", "pcs"}
var ingredients = []string{
	"Chicken", "Beef", "Pork", "Fish", "Tomato", "Lettuce", "Onion",
	"Garlic", "Rice", "Pasta", "Egg", "Milk", "Flour", "Butter", "Potato",
}

type InventoryFactory struct{}

func (inf *InventoryFactory) CreateItem() models.InventoryItem {
	min := float64(fake.IntBetween(5, 50))
	return models.InventoryItem{
		ID:          cuid.New(),
		Name:        ingredients[rand.Intn(len(ingredients))],
		Category:    inventoryCategories[rand.Intn(len(inventoryCategories))],
		Quantity:    min * (0.2 + rand.Float64()*1.8),
		Unit:        inventoryUnits[rand.Intn(len(inventoryUnits))],
		MinQuantity: min,
		UpdatedAt:   time.Now(),
	}
}
