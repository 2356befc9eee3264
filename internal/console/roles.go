package console

import (
	"fmt"
	"io"
	"time"

	"github.com/msarvaro/gastro-sub000/internal/client"
	"github.com/msarvaro/gastro-sub000/internal/models"
)

// ForRole builds the dashboard for one of the four staff roles. Each role
// only sees the views its backend surface serves.
func ForRole(role, lang string, interval time.Duration, out io.Writer, c *client.Client) (*Dashboard, error) {
	var views []*View
	switch role {
	case models.RoleAdmin:
		views = []*View{
			statsView(c),
			usersView(c),
			suppliersView(c),
			requestsView(c),
			inventoryView(c, true),
			menuView(c),
		}
	case models.RoleManager:
		views = []*View{
			statsView(c),
			inventoryView(c, false),
			requestsView(c),
			suppliersView(c),
			historyView(c),
		}
	case models.RoleWaiter:
		views = []*View{
			tablesView(c),
			ordersView(c),
			profileView(c),
		}
	case models.RoleCook:
		views = []*View{
			ordersView(c),
			historyView(c),
			inventoryView(c, false),
			profileView(c),
		}
	default:
		return nil, fmt.Errorf("no dashboard for role %q", role)
	}
	return NewDashboard(role, lang, interval, out, views), nil
}
