package factories

import (
	"math/rand"
	"time"

	"github.com/lucsky/cuid"
	"github.com/msarvaro/gastro-sub000/internal/models"
)

type SupplierFactory struct{}

func (sf *SupplierFactory) CreateSupplier() models.Supplier {
	categoryCount := rand.Intn(2) + 1
	categories := make([]string, 0, categoryCount)
	for i := 0; i < categoryCount; i++ {
		categories = append(categories, inventoryCategories[rand.Intn(len(inventoryCategories))])
	}

	return models.Supplier{
		ID:         cuid.New(),
		Name:       fake.Company().Name(),
		Categories: categories,
		Phone:      fake.Phone().Number(),
		Email:      fake.Internet().Email(),
		Address:    fake.Address().StreetAddress(),
		Status:     models.SupplierStatusActive,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

type RequestFactory struct{}

func (rf *RequestFactory) CreateRequest(supplierID string) models.SupplyRequest {
	itemCount := rand.Intn(3) + 1
	items := make([]string, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		items = append(items, ingredients[rand.Intn(len(ingredients))])
	}

	priorities := []string{"low", "normal", "high"}
	return models.SupplyRequest{
		ID:         cuid.New(),
		Branch:     "main",
		Items:      items,
		SupplierID: supplierID,
		Priority:   priorities[rand.Intn(len(priorities))],
		Status:     models.RequestStatusPending,
		CreatedAt:  time.Now(),
	}
}
