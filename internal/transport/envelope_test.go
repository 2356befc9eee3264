package transport

import (
	"testing"
	"time"

	"github.com/msarvaro/gastro-sub000/internal/models"
)

func TestDecodeListBareArray(t *testing.T) {
	var orders []models.Order
	err := DecodeList([]byte(`[{"id":"o1","status":"new"},{"id":"o2","status":"ready"}]`), &orders)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 || orders[0].ID != "o1" || orders[1].Status != "ready" {
		t.Errorf("got %+v", orders)
	}
}

func TestDecodeListEnvelope(t *testing.T) {
	body := `{"total": 1, "items": [{"id":"o1","status":"served","created_at":"2026-08-30T12:15:00Z"}]}`
	var orders []models.Order
	if err := DecodeList([]byte(body), &orders); err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders", len(orders))
	}
	want := time.Date(2026, 8, 30, 12, 15, 0, 0, time.UTC)
	if !orders[0].CreatedAt.Equal(want) {
		t.Errorf("created_at = %v, want %v", orders[0].CreatedAt, want)
	}
}

func TestDecodeListLegacyKey(t *testing.T) {
	var tables []models.Table
	if err := DecodeList([]byte(`{"tables": [{"id":"t1","number":3}]}`), &tables); err != nil {
		t.Fatal(err)
	}
	if len(tables) != 1 || tables[0].Number != 3 {
		t.Errorf("got %+v", tables)
	}
}

func TestDecodeListEmptyAndNull(t *testing.T) {
	var orders []models.Order
	if err := DecodeList(nil, &orders); err != nil {
		t.Fatal(err)
	}
	if err := DecodeList([]byte("null"), &orders); err != nil {
		t.Fatal(err)
	}
	if orders != nil {
		t.Errorf("expected untouched slice, got %+v", orders)
	}
}

func TestDecodeListUnknownEnvelope(t *testing.T) {
	var orders []models.Order
	if err := DecodeList([]byte(`{"payload": []}`), &orders); err == nil {
		t.Error("expected an error for an unrecognized envelope")
	}
}
