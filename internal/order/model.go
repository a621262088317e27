package order

import (
	"time"

	"cafeteria-be/internal/payment"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusServed    OrderStatus = "Served"
)

// Valid reports whether s is a member of the status enum.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusServed:
		return true
	}
	return false
}

type Order struct {
	ID        int              `json:"id"`
	TableID   int              `json:"table_id"`
	UserID    *int             `json:"user_id"`
	Status    OrderStatus      `json:"order_status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Details   []OrderDetail    `json:"order_details"`
	Payment   *payment.Payment `json:"payment,omitempty"`
}

type OrderDetail struct {
	ID         int         `json:"id"`
	OrderID    int         `json:"order_id"`
	ItemID     int         `json:"item_id"`
	ItemName   string      `json:"item_name,omitempty"`
	Quantity   int         `json:"quantity"`
	ItemStatus OrderStatus `json:"item_status"`
}

type OrderItemInput struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type CreateOrderParams struct {
	TableID int              `json:"table_id"`
	Items   []OrderItemInput `json:"items"`
}

type OrderFilter struct {
	Status  *OrderStatus
	TableID *int
}
