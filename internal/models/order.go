package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// OrderStatus moves forward only: Pending, Cooking, Delivering, Completed
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusCooking    OrderStatus = "Cooking"
	OrderStatusDelivering OrderStatus = "Delivering"
	OrderStatusCompleted  OrderStatus = "Completed"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusCooking:    1,
	OrderStatusDelivering: 2,
	OrderStatusCompleted:  3,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// ParseOrderStatus converts a wire value into an OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

// CanTransitionTo reports whether next is the status directly after s
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	return ok && to == from+1
}

type Order struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	CustomerID   *uint       `gorm:"index" json:"customer_id"`
	DriverID     *uint       `gorm:"index" json:"driver_id"`
	RestaurantID *uint       `gorm:"index" json:"restaurant_id"`
	Total        int         `gorm:"not null" json:"total"`
	Status       OrderStatus `gorm:"type:varchar(16);not null;default:'Pending'" json:"status"`
}

// OrderItemOption records what the customer picked for one dish option
type OrderItemOption struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

type OrderItemOptions []OrderItemOption

func (o OrderItemOptions) Value() (driver.Value, error) {
	return marshalJSONColumn(o)
}

func (o *OrderItemOptions) Scan(value interface{}) error {
	return unmarshalJSONColumn(value, o)
}

type OrderItem struct {
	ID        uint             `gorm:"primarykey" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	OrderID   uint             `gorm:"index;not null" json:"order_id"`
	DishID    *uint            `gorm:"index" json:"dish_id"`
	Options   OrderItemOptions `gorm:"type:jsonb;not null;default:'[]'" json:"options"`
}
