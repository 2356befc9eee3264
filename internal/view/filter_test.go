package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/msarvaro/gastro-sub000/internal/models"
)

func sampleItems() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "i1", Name: "Beef", Category: "meat", Quantity: 20, MinQuantity: 10},
		{ID: "i2", Name: "Milk", Category: "dairy", Quantity: 3, MinQuantity: 10},
		{ID: "i3", Name: "Butter", Category: "dairy", Quantity: 8, MinQuantity: 10},
		{ID: "i4", Name: "beetroot", Category: "vegetables", Quantity: 15, MinQuantity: 5},
	}
}

func inventoryFields(i models.InventoryItem) FieldSet {
	return FieldSet{
		SearchText: []string{i.ID, i.Name},
		Category:   i.Category,
		Status:     i.DerivedStatus(),
	}
}

func ids(items []models.InventoryItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestFilterEmptyCriteriaReturnsAll(t *testing.T) {
	items := sampleItems()
	got := Filter(items, Criteria{}, inventoryFields)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("empty criteria should return the input unchanged")
	}
}

func TestFilterIsSubsetAndMatchesAllCriteria(t *testing.T) {
	items := sampleItems()
	crit := Criteria{Category: "dairy", Status: models.InventoryStatusLow}
	got := Filter(items, crit, inventoryFields)

	if len(got) != 1 || got[0].ID != "i3" {
		t.Fatalf("got %v, want [i3]", ids(got))
	}
	for _, item := range got {
		fs := inventoryFields(item)
		if fs.Category != crit.Category || fs.Status != crit.Status {
			t.Errorf("element %s fails a provided criterion", item.ID)
		}
	}
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := sampleItems()
	got := Filter(items, Criteria{Search: "BEE"}, inventoryFields)
	if want := []string{"i1", "i4"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
}

func TestFilterCommutativity(t *testing.T) {
	items := sampleItems()
	crit := Criteria{Search: "b", Category: "dairy", Status: models.InventoryStatusLow}

	// applying the same conjunction through intermediate subsets must land
	// on the same result regardless of order
	byCategoryFirst := Filter(Filter(items, Criteria{Category: crit.Category}, inventoryFields), Criteria{Search: crit.Search, Status: crit.Status}, inventoryFields)
	bySearchFirst := Filter(Filter(items, Criteria{Search: crit.Search}, inventoryFields), Criteria{Category: crit.Category, Status: crit.Status}, inventoryFields)
	atOnce := Filter(items, crit, inventoryFields)

	if !reflect.DeepEqual(ids(byCategoryFirst), ids(atOnce)) || !reflect.DeepEqual(ids(bySearchFirst), ids(atOnce)) {
		t.Errorf("filter order changed the result: %v vs %v vs %v", ids(byCategoryFirst), ids(bySearchFirst), ids(atOnce))
	}
}

func TestSortHistoryDescending(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	orders := []models.Order{
		{ID: "o1", CompletedAt: &t1},
		{ID: "o2", CompletedAt: &t2},
		{ID: "o3", CancelledAt: &t3},
	}

	sorted := SortHistory(orders, models.Order.ClosedAt)
	want := []string{"o3", "o2", "o1"}
	for i, order := range sorted {
		if order.ID != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, order.ID, want[i])
		}
	}

	// input untouched
	if orders[0].ID != "o1" {
		t.Errorf("SortHistory mutated its input")
	}
}

func TestSortHistoryStableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "a", CompletedAt: &ts},
		{ID: "b", CompletedAt: &ts},
		{ID: "c", CompletedAt: &ts},
	}
	sorted := SortHistory(orders, models.Order.ClosedAt)
	for i, want := range []string{"a", "b", "c"} {
		if sorted[i].ID != want {
			t.Fatalf("stability broken at %d: got %s, want %s", i, sorted[i].ID, want)
		}
	}
}
