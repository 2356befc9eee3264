package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/view"
	"github.com/schollz/progressbar/v3"
)

const (
	TopicOrderHistory   = "order_history"
	TopicRequestHistory = "request_history"
)

// Exporter streams closed orders and requests into a sink, most recently
// closed first, with a progress bar across the rows.
type Exporter struct {
	sink SnapshotSink
}

func NewExporter(sink SnapshotSink) *Exporter {
	return &Exporter{sink: sink}
}

func (e *Exporter) ExportOrders(ctx context.Context, orders []models.Order) error {
	sorted := view.SortHistory(orders, models.Order.ClosedAt)
	bar := progressbar.Default(int64(len(sorted)), "exporting orders")
	for _, order := range sorted {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := json.Marshal(order)
		if err != nil {
			return fmt.Errorf("failed to serialize order %s: %w", order.ID, err)
		}
		if err := e.sink.WriteSnapshot(TopicOrderHistory, msg); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	return bar.Finish()
}

func (e *Exporter) ExportRequests(ctx context.Context, requests []models.SupplyRequest) error {
	sorted := view.SortHistory(requests, models.SupplyRequest.ClosedAt)
	bar := progressbar.Default(int64(len(sorted)), "exporting requests")
	for _, request := range sorted {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("failed to serialize request %s: %w", request.ID, err)
		}
		if err := e.sink.WriteSnapshot(TopicRequestHistory, msg); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	return bar.Finish()
}
