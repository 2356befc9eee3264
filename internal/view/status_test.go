package view

import (
	"testing"

	"github.com/msarvaro/gastro-sub000/internal/models"
)

func TestOrderStatusChain(t *testing.T) {
	chain := []string{
		models.OrderStatusNew,
		models.OrderStatusAccepted,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusServed,
		models.OrderStatusCompleted,
	}
	for i := 0; i < len(chain)-1; i++ {
		info, ok := OrderStatus(chain[i])
		if !ok {
			t.Fatalf("no vocabulary entry for %q", chain[i])
		}
		if info.Next != chain[i+1] {
			t.Errorf("%s: next = %q, want %q", chain[i], info.Next, chain[i+1])
		}
	}
}

func TestServedOrderVocabulary(t *testing.T) {
	info, ok := OrderStatus(models.OrderStatusServed)
	if !ok {
		t.Fatal("served has no vocabulary entry")
	}
	if info.Next != models.OrderStatusCompleted {
		t.Errorf("served next = %q, want completed", info.Next)
	}
	if got := info.Label("ru"); got != "Подан" {
		t.Errorf("ru label = %q, want Подан", got)
	}
	if got := info.Label("en"); got != "Served" {
		t.Errorf("en label = %q, want Served", got)
	}
}

func TestTerminalStatesHaveNoNext(t *testing.T) {
	for _, status := range []string{models.OrderStatusCompleted, models.OrderStatusCancelled} {
		info, ok := OrderStatus(status)
		if !ok {
			t.Fatalf("no vocabulary entry for %q", status)
		}
		if info.Next != "" {
			t.Errorf("%s is terminal but offers next %q", status, info.Next)
		}
		if OrderCancellable(status) {
			t.Errorf("%s should not be cancellable", status)
		}
	}
}

func TestPreCompletedStatesAreCancellable(t *testing.T) {
	for _, status := range []string{
		models.OrderStatusNew, models.OrderStatusAccepted, models.OrderStatusPreparing,
		models.OrderStatusReady, models.OrderStatusServed,
	} {
		if !OrderCancellable(status) {
			t.Errorf("%s should be cancellable", status)
		}
	}
}

func TestLabelFallsBackToEnglish(t *testing.T) {
	info, _ := RequestStatus(models.RequestStatusPending)
	if got := info.Label("kk"); got != "Pending" {
		t.Errorf("unknown language should fall back to en, got %q", got)
	}
}
