package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/msarvaro/gastro-sub000/internal/client"
	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/view"
)

func orderFields(o models.Order) view.FieldSet {
	names := make([]string, 0, len(o.Items)+2)
	names = append(names, o.ID, fmt.Sprintf("%d", o.TableNumber))
	for _, item := range o.Items {
		names = append(names, item.Name)
	}
	return view.FieldSet{SearchText: names, Status: o.Status}
}

func statusIndex[T any](items []T, id func(T) string, status func(T) string) map[string]string {
	idx := make(map[string]string, len(items))
	for _, item := range items {
		idx[id(item)] = status(item)
	}
	return idx
}

func ordersView(c *client.Client) *View {
	return &View{
		Name: "orders",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			orders, err := c.Orders.List(ctx, nil)
			if err != nil {
				return Snapshot{}, err
			}
			filtered := view.Filter(orders, crit, orderFields)
			return Snapshot{
				Table:  view.OrderRows(filtered, lang),
				Status: statusIndex(filtered, func(o models.Order) string { return o.ID }, func(o models.Order) string { return o.Status }),
			}, nil
		},
		Actions: map[Action]ActionFunc{
			ActionAdvance: func(ctx context.Context, id, status, _ string) error {
				info, ok := view.OrderStatus(status)
				if !ok || info.Next == "" {
					return fmt.Errorf("order %s has no further transition from %q", id, status)
				}
				return c.Orders.SetStatus(ctx, id, info.Next)
			},
			ActionCancel: func(ctx context.Context, id, status, _ string) error {
				if !view.OrderCancellable(status) {
					return fmt.Errorf("order %s is already closed", id)
				}
				return c.Orders.SetStatus(ctx, id, models.OrderStatusCancelled)
			},
		},
	}
}

// historyView sorts by close time descending before filtering, so the most
// recent closure always leads.
func historyView(c *client.Client) *View {
	return &View{
		Name: "history",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			orders, err := c.Orders.History(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			sorted := view.SortHistory(orders, models.Order.ClosedAt)
			filtered := view.Filter(sorted, crit, orderFields)
			return Snapshot{Table: view.HistoryRows(filtered, lang)}, nil
		},
		Actions: map[Action]ActionFunc{},
	}
}

func tableFields(t models.Table) view.FieldSet {
	return view.FieldSet{
		SearchText: []string{t.ID, fmt.Sprintf("%d", t.Number)},
		Status:     t.Status,
	}
}

func tablesView(c *client.Client) *View {
	setStatus := func(status string) ActionFunc {
		return func(ctx context.Context, id, _, _ string) error {
			return c.Tables.SetStatus(ctx, id, status)
		}
	}
	return &View{
		Name: "tables",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			tables, err := c.Tables.List(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			filtered := view.Filter(tables, crit, tableFields)
			return Snapshot{
				Table:  view.TableRows(filtered, lang),
				Status: statusIndex(filtered, func(t models.Table) string { return t.ID }, func(t models.Table) string { return t.Status }),
			}, nil
		},
		Actions: map[Action]ActionFunc{
			ActionFree:    setStatus(models.TableStatusFree),
			ActionOccupy:  setStatus(models.TableStatusOccupied),
			ActionReserve: setStatus(models.TableStatusReserved),
		},
	}
}

func inventoryFields(i models.InventoryItem) view.FieldSet {
	return view.FieldSet{
		SearchText: []string{i.ID, i.Name},
		Category:   i.Category,
		Status:     i.DerivedStatus(),
	}
}

func inventoryView(c *client.Client, canDelete bool) *View {
	actions := map[Action]ActionFunc{
		ActionAdjust: func(ctx context.Context, id, _, arg string) error {
			qty, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("adjust needs a numeric quantity: %w", err)
			}
			return c.Inventory.Adjust(ctx, id, qty)
		},
	}
	if canDelete {
		actions[ActionDelete] = func(ctx context.Context, id, _, _ string) error {
			return c.Inventory.Delete(ctx, id)
		}
	}
	return &View{
		Name: "inventory",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			items, err := c.Inventory.List(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			filtered := view.Filter(items, crit, inventoryFields)
			return Snapshot{
				Table:  view.InventoryRows(filtered, lang),
				Status: statusIndex(filtered, func(i models.InventoryItem) string { return i.ID }, func(i models.InventoryItem) string { return i.DerivedStatus() }),
			}, nil
		},
		Actions: actions,
	}
}

func supplierFields(s models.Supplier) view.FieldSet {
	return view.FieldSet{
		SearchText: []string{s.ID, s.Name, s.Email, s.Phone},
		Category:   strings.Join(s.Categories, ","),
		Status:     s.Status,
	}
}

func suppliersView(c *client.Client) *View {
	return &View{
		Name: "suppliers",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			suppliers, err := c.Suppliers.List(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			filtered := view.Filter(suppliers, crit, supplierFields)
			return Snapshot{
				Table:  view.SupplierRows(filtered, lang),
				Status: statusIndex(filtered, func(s models.Supplier) string { return s.ID }, func(s models.Supplier) string { return s.Status }),
			}, nil
		},
		Actions: map[Action]ActionFunc{
			ActionStatus: func(ctx context.Context, id, _, arg string) error {
				if _, ok := view.SupplierStatus(arg); !ok {
					return fmt.Errorf("unknown supplier status %q", arg)
				}
				return c.Suppliers.SetStatus(ctx, id, arg)
			},
			ActionDelete: func(ctx context.Context, id, _, _ string) error {
				return c.Suppliers.Delete(ctx, id)
			},
		},
	}
}

func requestFields(r models.SupplyRequest) view.FieldSet {
	search := append([]string{r.ID, r.SupplierID}, r.Items...)
	return view.FieldSet{SearchText: search, Status: r.Status, Branch: r.Branch}
}

func requestsView(c *client.Client) *View {
	return &View{
		Name: "requests",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			requests, err := c.Requests.List(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			sorted := view.SortHistory(requests, models.SupplyRequest.ClosedAt)
			filtered := view.Filter(sorted, crit, requestFields)
			return Snapshot{
				Table:  view.RequestRows(filtered, lang),
				Status: statusIndex(filtered, func(r models.SupplyRequest) string { return r.ID }, func(r models.SupplyRequest) string { return r.Status }),
			}, nil
		},
		Actions: map[Action]ActionFunc{
			ActionApprove: func(ctx context.Context, id, status, _ string) error {
				if status != models.RequestStatusPending {
					return fmt.Errorf("request %s is not pending", id)
				}
				return c.Requests.Approve(ctx, id)
			},
			ActionReject: func(ctx context.Context, id, status, _ string) error {
				if status != models.RequestStatusPending {
					return fmt.Errorf("request %s is not pending", id)
				}
				return c.Requests.Reject(ctx, id)
			},
			ActionComplete: func(ctx context.Context, id, status, _ string) error {
				if status != models.RequestStatusActive {
					return fmt.Errorf("request %s is not active", id)
				}
				return c.Requests.Complete(ctx, id)
			},
			ActionDelete: func(ctx context.Context, id, _, _ string) error {
				return c.Requests.Delete(ctx, id)
			},
		},
	}
}

func menuFields(m models.MenuItem) view.FieldSet {
	status := "available"
	if !m.Available {
		status = "unavailable"
	}
	return view.FieldSet{
		SearchText: []string{m.ID, m.Name, m.Description},
		Category:   m.CategoryID,
		Status:     status,
	}
}

func menuView(c *client.Client) *View {
	setAvailability := func(available bool) ActionFunc {
		return func(ctx context.Context, id, _, _ string) error {
			return c.Menu.SetAvailability(ctx, id, available)
		}
	}
	return &View{
		Name: "menu",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			items, err := c.Menu.Items(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			filtered := view.Filter(items, crit, menuFields)
			return Snapshot{
				Table:  view.MenuRows(filtered),
				Status: statusIndex(filtered, func(m models.MenuItem) string { return m.ID }, func(m models.MenuItem) string { return menuFields(m).Status }),
			}, nil
		},
		Actions: map[Action]ActionFunc{
			ActionEnable:  setAvailability(true),
			ActionDisable: setAvailability(false),
			ActionDelete: func(ctx context.Context, id, _, _ string) error {
				return c.Menu.DeleteItem(ctx, id)
			},
		},
	}
}

func userFields(u models.User) view.FieldSet {
	return view.FieldSet{
		SearchText: []string{u.ID, u.Username, u.Email},
		Category:   u.Role,
		Status:     u.Status,
	}
}

func usersView(c *client.Client) *View {
	setStatus := func(status string) ActionFunc {
		return func(ctx context.Context, id, _, _ string) error {
			return c.Users.SetStatus(ctx, id, status)
		}
	}
	return &View{
		Name: "users",
		Load: func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error) {
			users, err := c.Users.List(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			filtered := view.Filter(users, crit, userFields)
			return Snapshot{
				Table:  view.UserRows(filtered, lang),
				Status: statusIndex(filtered, func(u models.User) string { return u.ID }, func(u models.User) string { return u.Status }),
			}, nil
		},
		Actions: map[Action]ActionFunc{
			ActionBlock:    setStatus(models.UserStatusBlocked),
			ActionActivate: setStatus(models.UserStatusActive),
			ActionDelete: func(ctx context.Context, id, _, _ string) error {
				return c.Users.Delete(ctx, id)
			},
		},
	}
}

func statsView(c *client.Client) *View {
	return &View{
		Name: "dashboard",
		Load: func(ctx context.Context, _ view.Criteria, _ string) (Snapshot, error) {
			stats, err := c.Stats(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			return Snapshot{Table: view.StatsRows(stats)}, nil
		},
		Actions: map[Action]ActionFunc{},
	}
}

func profileView(c *client.Client) *View {
	return &View{
		Name: "profile",
		Load: func(ctx context.Context, _ view.Criteria, _ string) (Snapshot, error) {
			profile, err := c.Whoami(ctx)
			if err != nil {
				return Snapshot{}, err
			}
			return Snapshot{Table: view.Table{
				Title:  "Profile",
				Header: []string{"FIELD", "VALUE"},
				Rows: [][]string{
					{"id", profile.ID},
					{"username", profile.Username},
					{"role", profile.Role},
					{"business", profile.Business},
				},
			}}, nil
		},
		Actions: map[Action]ActionFunc{},
	}
}
