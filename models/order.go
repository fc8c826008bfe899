package models

import (
	"fmt"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderPreparing OrderStatus = "preparing"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	gorm.Model
	RestaurantID  uint         `json:"restaurant_id"`
	ReservationID *uint        `json:"reservation_id"`
	Reservation   *Reservation `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
	UserID        *uint        `json:"user_id"`
	Status        OrderStatus  `json:"status"`
	Items         []OrderItem  `json:"items" gorm:"foreignKey:OrderID"`
	Total         float64      `json:"total"`
	Notes         string       `json:"notes"`
}

// OrderItem snapshots the menu item price at order time so later menu edits
// don't change past orders.
type OrderItem struct {
	gorm.Model
	OrderID    uint     `json:"order_id"`
	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"menu_item" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrderPlaced
	}
	return nil
}

// UpdateStatus applies a status transition and persists it. Allowed
// transitions: placed → preparing|cancelled, preparing → served|cancelled.
func (o *Order) UpdateStatus(tx *gorm.DB, newStatus OrderStatus) error {
	switch o.Status {
	case OrderPlaced:
		if newStatus != OrderPreparing && newStatus != OrderCancelled {
			return fmt.Errorf("invalid transition from placed to %s", newStatus)
		}
	case OrderPreparing:
		if newStatus != OrderServed && newStatus != OrderCancelled {
			return fmt.Errorf("invalid transition from preparing to %s", newStatus)
		}
	case OrderServed, OrderCancelled:
		return fmt.Errorf("no transitions allowed from %s", o.Status)
	}

	o.Status = newStatus
	if tx != nil {
		if err := tx.Save(o).Error; err != nil {
			return err
		}
	}
	return nil
}
