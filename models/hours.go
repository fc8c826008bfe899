package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// BusinessHours is the current per-weekday hours table.
type BusinessHours struct {
	gorm.Model
	RestaurantID uint      `json:"restaurant_id"`
	DayOfWeek    DayOfWeek `json:"day_of_week"`
	OpenTime     string    `json:"open_time"`  // Format "HH:MM" in 24h
	CloseTime    string    `json:"close_time"` // Format "HH:MM" in 24h
	IsClosed     bool      `json:"is_closed" gorm:"default:false"`
}

// OpeningHours is a legacy hours table kept for databases migrated from the
// first schema version. Read-only.
type OpeningHours struct {
	gorm.Model
	RestaurantID uint   `json:"restaurant_id"`
	Weekday      int    `json:"weekday"`
	OpensAt      string `json:"opens_at"`
	ClosesAt     string `json:"closes_at"`
}

// RestaurantHours is the oldest legacy hours table, keyed by day name.
// Read-only.
type RestaurantHours struct {
	gorm.Model
	RestaurantID uint   `json:"restaurant_id"`
	Day          string `json:"day"` // e.g. "monday", "Mon"
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// Closure marks a calendar date on which no reservations are accepted,
// regardless of configured hours.
type Closure struct {
	gorm.Model
	RestaurantID uint   `json:"restaurant_id"`
	Date         string `json:"date" gorm:"index"` // Format "YYYY-MM-DD"
	Reason       string `json:"reason"`
}
