package models

import (
	"gorm.io/gorm"
)

type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableUnavailable TableStatus = "unavailable"
	TableRetired     TableStatus = "retired"
)

// Table is a physical table in the dining room. Only tables with status
// "available" count toward seating capacity.
type Table struct {
	gorm.Model
	RestaurantID uint        `json:"restaurant_id"`
	Name         string      `json:"name"`
	Capacity     int         `json:"capacity"`
	Status       TableStatus `json:"status" gorm:"default:'available'"`
	Location     string      `json:"location"` // e.g. "patio", "main room"
}
