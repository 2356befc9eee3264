package console

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/view"
)

// fakeView serves a mutable row set so tests can shrink the view between
// dispatches the way a completed approval does in production.
type fakeView struct {
	rows  map[string]string // id -> status
	calls []string
}

func (f *fakeView) view() *View {
	return &View{
		Name: "requests",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			snap := Snapshot{Status: map[string]string{}}
			for id, status := range f.rows {
				snap.Status[id] = status
				snap.Table.Rows = append(snap.Table.Rows, []string{id, status})
			}
			snap.Table.Header = []string{"ID", "STATUS"}
			return snap, nil
		},
		Actions: map[Action]ActionFunc{
			ActionApprove: func(ctx context.Context, id, status, arg string) error {
				f.calls = append(f.calls, "approve "+id)
				delete(f.rows, id)
				return nil
			},
		},
	}
}

func newTestDashboard(v *View) *Dashboard {
	return NewDashboard(models.RoleManager, "en", time.Hour, io.Discard, []*View{v})
}

func TestDispatchRejectsRowAbsentFromSnapshot(t *testing.T) {
	f := &fakeView{rows: map[string]string{"r1": models.RequestStatusPending}}
	d := newTestDashboard(f.view())
	ctx := context.Background()

	if err := d.refresh(ctx); err != nil {
		t.Fatal(err)
	}

	cmd := Command{Kind: CmdAction, Action: ActionApprove, ID: "r1"}
	if err := d.Dispatch(ctx, cmd); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	// the successful dispatch re-fetched, so r1 is gone from the snapshot
	if err := d.Dispatch(ctx, cmd); err == nil {
		t.Fatal("second approve on a vanished row should be rejected")
	}
	if len(f.calls) != 1 {
		t.Errorf("backend called %d times, want 1: %v", len(f.calls), f.calls)
	}
}

func TestDispatchRejectsUnknownAction(t *testing.T) {
	f := &fakeView{rows: map[string]string{"r1": models.RequestStatusPending}}
	d := newTestDashboard(f.view())
	ctx := context.Background()
	if err := d.refresh(ctx); err != nil {
		t.Fatal(err)
	}

	err := d.Dispatch(ctx, Command{Kind: CmdAction, Action: ActionDelete, ID: "r1"})
	if err == nil {
		t.Fatal("unsupported action should be rejected")
	}
	if len(f.calls) != 0 {
		t.Errorf("backend should not be called, got %v", f.calls)
	}
}

func TestDispatchPassesRowStatus(t *testing.T) {
	var gotStatus string
	v := &View{
		Name: "orders",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			return Snapshot{Status: map[string]string{"o1": models.OrderStatusServed}}, nil
		},
		Actions: map[Action]ActionFunc{
			ActionAdvance: func(ctx context.Context, id, status, arg string) error {
				gotStatus = status
				return nil
			},
		},
	}
	d := newTestDashboard(v)
	ctx := context.Background()
	if err := d.refresh(ctx); err != nil {
		t.Fatal(err)
	}

	if err := d.Dispatch(ctx, Command{Kind: CmdAction, Action: ActionAdvance, ID: "o1"}); err != nil {
		t.Fatal(err)
	}
	if gotStatus != models.OrderStatusServed {
		t.Errorf("status = %q, want served", gotStatus)
	}
}
