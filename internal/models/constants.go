package models

const (
	OrderStatusNew       = "new"
	OrderStatusAccepted  = "accepted"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"

	TableStatusFree     = "free"
	TableStatusOccupied = "occupied"
	TableStatusReserved = "reserved"

	InventoryStatusOK       = "ok"
	InventoryStatusLow      = "low"
	InventoryStatusCritical = "critical"

	SupplierStatusActive   = "active"
	SupplierStatusPaused   = "paused"
	SupplierStatusArchived = "archived"

	RequestStatusPending   = "pending"
	RequestStatusActive    = "active"
	RequestStatusCompleted = "completed"
	RequestStatusRejected  = "rejected"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBlocked  = "blocked"

	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleWaiter  = "waiter"
	RoleCook    = "cook"
	RoleClient  = "client"
)
