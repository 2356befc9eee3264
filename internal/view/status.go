package view

import "github.com/msarvaro/gastro-sub000/internal/models"

// StatusInfo is one vocabulary entry: localized labels, a style class for the
// renderer, and the single next status offered by the primary action. Next is
// empty for terminal states and for entities without a workflow. The table is
// a plain lookup; the server rejects transitions it does not allow.
type StatusInfo struct {
	Labels map[string]string
	Class  string
	Next   string
}

// Label falls back to English when the requested language has no entry.
func (s StatusInfo) Label(lang string) string {
	if label, ok := s.Labels[lang]; ok {
		return label
	}
	return s.Labels["en"]
}

var orderStatuses = map[string]StatusInfo{
	models.OrderStatusNew: {
		Labels: map[string]string{"en": "New", "ru": "Новый"},
		Class:  "status-new",
		Next:   models.OrderStatusAccepted,
	},
	models.OrderStatusAccepted: {
		Labels: map[string]string{"en": "Accepted", "ru": "Принят"},
		Class:  "status-accepted",
		Next:   models.OrderStatusPreparing,
	},
	models.OrderStatusPreparing: {
		Labels: map[string]string{"en": "Preparing", "ru": "Готовится"},
		Class:  "status-preparing",
		Next:   models.OrderStatusReady,
	},
	models.OrderStatusReady: {
		Labels: map[string]string{"en": "Ready", "ru": "Готов"},
		Class:  "status-ready",
		Next:   models.OrderStatusServed,
	},
	models.OrderStatusServed: {
		Labels: map[string]string{"en": "Served", "ru": "Подан"},
		Class:  "status-served",
		Next:   models.OrderStatusCompleted,
	},
	models.OrderStatusCompleted: {
		Labels: map[string]string{"en": "Completed", "ru": "Завершён"},
		Class:  "status-completed",
	},
	models.OrderStatusCancelled: {
		Labels: map[string]string{"en": "Cancelled", "ru": "Отменён"},
		Class:  "status-cancelled",
	},
}

var tableStatuses = map[string]StatusInfo{
	models.TableStatusFree:     {Labels: map[string]string{"en": "Free", "ru": "Свободен"}, Class: "status-free"},
	models.TableStatusOccupied: {Labels: map[string]string{"en": "Occupied", "ru": "Занят"}, Class: "status-occupied"},
	models.TableStatusReserved: {Labels: map[string]string{"en": "Reserved", "ru": "Забронирован"}, Class: "status-reserved"},
}

var inventoryStatuses = map[string]StatusInfo{
	models.InventoryStatusOK:       {Labels: map[string]string{"en": "OK", "ru": "В норме"}, Class: "status-ok"},
	models.InventoryStatusLow:      {Labels: map[string]string{"en": "Low", "ru": "Мало"}, Class: "status-low"},
	models.InventoryStatusCritical: {Labels: map[string]string{"en": "Critical", "ru": "Критично"}, Class: "status-critical"},
}

var supplierStatuses = map[string]StatusInfo{
	models.SupplierStatusActive:   {Labels: map[string]string{"en": "Active", "ru": "Активен"}, Class: "status-active"},
	models.SupplierStatusPaused:   {Labels: map[string]string{"en": "Paused", "ru": "Приостановлен"}, Class: "status-paused"},
	models.SupplierStatusArchived: {Labels: map[string]string{"en": "Archived", "ru": "В архиве"}, Class: "status-archived"},
}

var requestStatuses = map[string]StatusInfo{
	models.RequestStatusPending: {
		Labels: map[string]string{"en": "Pending", "ru": "Ожидает"},
		Class:  "status-pending",
		Next:   models.RequestStatusActive,
	},
	models.RequestStatusActive: {
		Labels: map[string]string{"en": "Active", "ru": "Активна"},
		Class:  "status-active",
		Next:   models.RequestStatusCompleted,
	},
	models.RequestStatusCompleted: {Labels: map[string]string{"en": "Completed", "ru": "Выполнена"}, Class: "status-completed"},
	models.RequestStatusRejected:  {Labels: map[string]string{"en": "Rejected", "ru": "Отклонена"}, Class: "status-rejected"},
}

var userStatuses = map[string]StatusInfo{
	models.UserStatusActive:   {Labels: map[string]string{"en": "Active", "ru": "Активен"}, Class: "status-active"},
	models.UserStatusInactive: {Labels: map[string]string{"en": "Inactive", "ru": "Неактивен"}, Class: "status-inactive"},
	models.UserStatusBlocked:  {Labels: map[string]string{"en": "Blocked", "ru": "Заблокирован"}, Class: "status-blocked"},
}

func OrderStatus(status string) (StatusInfo, bool) {
	info, ok := orderStatuses[status]
	return info, ok
}

func TableStatus(status string) (StatusInfo, bool) {
	info, ok := tableStatuses[status]
	return info, ok
}

func InventoryStatus(status string) (StatusInfo, bool) {
	info, ok := inventoryStatuses[status]
	return info, ok
}

func SupplierStatus(status string) (StatusInfo, bool) {
	info, ok := supplierStatuses[status]
	return info, ok
}

func RequestStatus(status string) (StatusInfo, bool) {
	info, ok := requestStatuses[status]
	return info, ok
}

func UserStatus(status string) (StatusInfo, bool) {
	info, ok := userStatuses[status]
	return info, ok
}

// OrderCancellable reports whether cancel is still offered as the side
// transition. Terminal states are not cancellable.
func OrderCancellable(status string) bool {
	return status != models.OrderStatusCompleted && status != models.OrderStatusCancelled
}
