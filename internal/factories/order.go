package factories

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/msarvaro/gastro-sub000/internal/models"
)

var fake = faker.New()

var menuDishes = []string{
	"Steak", "Borscht", "Plov", "Manty", "Lagman", "Caesar Salad",
	"Margherita", "Shashlik", "Beshbarmak", "Cola", "Green Tea", "Lemonade",
}

type OrderFactory struct{}

func (of *OrderFactory) CreateOrder() models.Order {
	itemCount := rand.Intn(4) + 1
	items := make([]models.OrderItem, itemCount)
	for i := range items {
		items[i] = models.OrderItem{
			Name:     menuDishes[rand.Intn(len(menuDishes))],
			Quantity: rand.Intn(3) + 1,
			Price:    float64(fake.IntBetween(500, 8000)),
		}
	}

	order := models.Order{
		ID:          cuid.New(),
		TableID:     cuid.New(),
		TableNumber: fake.IntBetween(1, 20),
		Items:       items,
		Status:      models.OrderStatusNew,
		CreatedAt:   time.Now().Add(-time.Duration(rand.Intn(120)) * time.Minute),
	}
	order.Total = order.ComputeTotal()
	return order
}

// CreateClosedOrder produces a completed or cancelled order for history
// fixtures, closed at the given time.
func (of *OrderFactory) CreateClosedOrder(closedAt time.Time) models.Order {
	order := of.CreateOrder()
	order.CreatedAt = closedAt.Add(-time.Duration(rand.Intn(90)+10) * time.Minute)
	if fake.Bool() {
		order.Status = models.OrderStatusCompleted
		order.CompletedAt = &closedAt
	} else {
		order.Status = models.OrderStatusCancelled
		order.CancelledAt = &closedAt
	}
	return order
}
