package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// ActiveStatuses are the reservation statuses that count toward conflicts
// and seating capacity.
var ActiveStatuses = []ReservationStatus{StatusPending, StatusConfirmed}

type Reservation struct {
	gorm.Model
	Code            string            `json:"code" gorm:"uniqueIndex"`
	RestaurantID    uint              `json:"restaurant_id"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone"`
	ReservationTime time.Time         `json:"reservation_time"`
	PartySize       int               `json:"party_size"`
	TableID         *uint             `json:"table_id"`
	Table           *Table            `json:"table,omitempty" gorm:"foreignKey:TableID"`
	Status          ReservationStatus `json:"status"`
	Notes           string            `json:"notes"`
	UserID          *uint             `json:"user_id"`
	User            *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.Code == "" {
		r.Code = uuid.NewString()
	}
	return nil
}

// IsActive reports whether the reservation counts toward conflicts.
func (r Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// UpdateStatus applies a status transition and persists it. Allowed
// transitions: pending → confirmed|cancelled, confirmed → completed|cancelled.
func (r *Reservation) UpdateStatus(tx *gorm.DB, newStatus ReservationStatus) error {
	switch r.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", r.Status)
	}

	r.Status = newStatus
	if tx != nil {
		if err := tx.Save(r).Error; err != nil {
			return err
		}
	}
	return nil
}
