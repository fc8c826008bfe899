package models

import (
	"gorm.io/gorm"
)

// Restaurant holds the restaurant profile together with its hours settings.
// WeeklyHours is a JSON document keyed by weekday; several historical shapes
// are accepted (see the availability package). The flat OpenTime/CloseTime
// columns act as a fallback when no weekly entry exists for a day.
type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	TimeZone    string `json:"time_zone" gorm:"default:'UTC'"`

	OpenTime       *string `json:"open_time"`  // "HH:MM", 24h
	CloseTime      *string `json:"close_time"` // "HH:MM", 24h
	SlotInterval   *int    `json:"slot_interval"`   // minutes between bookable slots
	DiningDuration *int    `json:"dining_duration"` // minutes a party occupies a table
	WeeklyHours    string  `json:"weekly_hours" gorm:"type:text"`

	LogoURL string `json:"logo_url"`
}
