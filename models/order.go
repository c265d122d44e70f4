package models

import (
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCanceled  OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Lines     []OrderLine `json:"products"`
}

// OrderLine links an order to a product. Price and ProductName are frozen
// copies taken when the line is attached; later catalog edits do not touch
// them.
type OrderLine struct {
	OrderID     int       `json:"order_id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Subtotal    float64   `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LineInput struct {
	ProductID int `json:"id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	UserID   int         `json:"user_id" binding:"required"`
	Products []LineInput `json:"products" binding:"required,min=1,dive"`
}

// UpdateOrderRequest: a non-nil Status changes the status, a non-nil Products
// slice replaces the whole line set. An empty slice detaches every line.
type UpdateOrderRequest struct {
	Status   *OrderStatus `json:"status" binding:"omitempty,oneof=pending completed canceled"`
	Products []LineInput  `json:"products" binding:"omitempty,dive"`
}

// OrderFilter narrows order reads; fields are optional and AND-combined.
// Date bounds are inclusive against created_at.
type OrderFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    OrderStatus
	UserID    int
}

func (f OrderFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return NewValidationError("status", "must be one of pending, completed, canceled")
	}
	if f.UserID < 0 {
		return NewValidationError("user_id", "must be positive")
	}
	return nil
}

type OrderEvent struct {
	OrderID  int         `json:"order_id"`
	UserID   int         `json:"user_id"`
	Type     string      `json:"type"` // created, status_updated, deleted, pending_check
	Status   OrderStatus `json:"status"`
	Total    float64     `json:"total"`
	Occurred time.Time   `json:"occurred"`
}
