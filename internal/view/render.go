package view

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/msarvaro/gastro-sub000/internal/models"
)

// Table is a rendered-ready projection of a filtered collection. Rendering
// rewrites the whole table each cycle; collections are single-location scale,
// so correctness wins over incremental updates.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Render lays the table out with aligned columns. Pure: no fetching, no
// mutation, all data arrives resolved.
func Render(t Table) string {
	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(t.Title + "\n")
	}

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	if len(t.Rows) == 0 {
		sb.WriteString("(no rows)\n")
	}
	return sb.String()
}

const thinSpace = " "

// FormatMoney groups the integer part in threes with thin spaces:
// 1234567 -> "1 234 567". Fractional parts are dropped; prices are whole
// currency units.
func FormatMoney(amount float64) string {
	digits := fmt.Sprintf("%.0f", amount)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, thinSpace)
	if negative {
		out = "-" + out
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01 15:04")
}

func itemsSummary(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

// OrderRows projects active orders, with the primary-action hint from the
// status vocabulary.
func OrderRows(orders []models.Order, lang string) Table {
	t := Table{
		Title:  "Orders",
		Header: []string{"ID", "TABLE", "ITEMS", "TOTAL", "STATUS", "NEXT", "CREATED"},
	}
	for _, o := range orders {
		status, next := o.Status, "-"
		if info, ok := OrderStatus(o.Status); ok {
			status = info.Label(lang)
			if info.Next != "" {
				next = info.Next
			}
		}
		t.Rows = append(t.Rows, []string{
			o.ID,
			fmt.Sprintf("%d", o.TableNumber),
			itemsSummary(o.Items),
			FormatMoney(o.ComputeTotal()),
			status,
			next,
			formatTime(o.CreatedAt),
		})
	}
	return t
}

// HistoryRows projects closed orders, trusting the server-side total.
func HistoryRows(orders []models.Order, lang string) Table {
	t := Table{
		Title:  "Order history",
		Header: []string{"ID", "TABLE", "TOTAL", "STATUS", "CLOSED"},
	}
	for _, o := range orders {
		status := o.Status
		if info, ok := OrderStatus(o.Status); ok {
			status = info.Label(lang)
		}
		t.Rows = append(t.Rows, []string{
			o.ID,
			fmt.Sprintf("%d", o.TableNumber),
			FormatMoney(o.Total),
			status,
			formatTime(o.ClosedAt()),
		})
	}
	return t
}

func TableRows(tables []models.Table, lang string) Table {
	t := Table{
		Title:  "Tables",
		Header: []string{"ID", "NO", "SEATS", "STATUS", "ORDER"},
	}
	for _, tb := range tables {
		status := tb.Status
		if info, ok := TableStatus(tb.Status); ok {
			status = info.Label(lang)
		}
		order := tb.CurrentOrderID
		if order == "" {
			order = "-"
		}
		t.Rows = append(t.Rows, []string{
			tb.ID,
			fmt.Sprintf("%d", tb.Number),
			fmt.Sprintf("%d", tb.Seats),
			status,
			order,
		})
	}
	return t
}

func InventoryRows(items []models.InventoryItem, lang string) Table {
	t := Table{
		Title:  "Inventory",
		Header: []string{"ID", "NAME", "CATEGORY", "QTY", "MIN", "STATUS"},
	}
	for _, item := range items {
		status := item.DerivedStatus()
		if info, ok := InventoryStatus(status); ok {
			status = info.Label(lang)
		}
		t.Rows = append(t.Rows, []string{
			item.ID,
			item.Name,
			item.Category,
			fmt.Sprintf("%g %s", item.Quantity, item.Unit),
			fmt.Sprintf("%g", item.MinQuantity),
			status,
		})
	}
	return t
}

func SupplierRows(suppliers []models.Supplier, lang string) Table {
	t := Table{
		Title:  "Suppliers",
		Header: []string{"ID", "NAME", "CATEGORIES", "PHONE", "EMAIL", "STATUS"},
	}
	for _, s := range suppliers {
		status := s.Status
		if info, ok := SupplierStatus(s.Status); ok {
			status = info.Label(lang)
		}
		t.Rows = append(t.Rows, []string{
			s.ID,
			s.Name,
			strings.Join(s.Categories, ","),
			s.Phone,
			s.Email,
			status,
		})
	}
	return t
}

func RequestRows(requests []models.SupplyRequest, lang string) Table {
	t := Table{
		Title:  "Supply requests",
		Header: []string{"ID", "BRANCH", "ITEMS", "PRIORITY", "STATUS", "CREATED"},
	}
	for _, r := range requests {
		status := r.Status
		if info, ok := RequestStatus(r.Status); ok {
			status = info.Label(lang)
		}
		t.Rows = append(t.Rows, []string{
			r.ID,
			r.Branch,
			strings.Join(r.Items, ","),
			r.Priority,
			status,
			formatTime(r.CreatedAt),
		})
	}
	return t
}

func MenuRows(items []models.MenuItem) Table {
	t := Table{
		Title:  "Menu",
		Header: []string{"ID", "NAME", "PRICE", "CATEGORY", "AVAILABLE"},
	}
	for _, m := range items {
		available := "yes"
		if !m.Available {
			available = "no"
		}
		t.Rows = append(t.Rows, []string{
			m.ID,
			m.Name,
			FormatMoney(m.Price),
			m.CategoryID,
			available,
		})
	}
	return t
}

func UserRows(users []models.User, lang string) Table {
	t := Table{
		Title:  "Staff",
		Header: []string{"ID", "USERNAME", "ROLE", "STATUS", "CREATED"},
	}
	for _, u := range users {
		status := u.Status
		if info, ok := UserStatus(u.Status); ok {
			status = info.Label(lang)
		}
		t.Rows = append(t.Rows, []string{
			u.ID,
			u.Username,
			u.Role,
			status,
			formatTime(u.CreatedAt),
		})
	}
	return t
}

func StatsRows(stats *models.Stats) Table {
	return Table{
		Title:  "Dashboard",
		Header: []string{"METRIC", "VALUE"},
		Rows: [][]string{
			{"Orders today", fmt.Sprintf("%d", stats.OrdersToday)},
			{"Revenue today", FormatMoney(stats.RevenueToday)},
			{"Active orders", fmt.Sprintf("%d", stats.ActiveOrders)},
			{"Occupied tables", fmt.Sprintf("%d", stats.OccupiedTables)},
			{"Low stock items", fmt.Sprintf("%d", stats.LowStockItems)},
			{"Pending requests", fmt.Sprintf("%d", stats.PendingRequests)},
			{"Active staff", fmt.Sprintf("%d", stats.ActiveStaff)},
		},
	}
}
