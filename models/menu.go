package models

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	RestaurantID uint       `json:"restaurant_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	SortOrder    int        `json:"sort_order"`
	Items        []MenuItem `json:"items" gorm:"foreignKey:CategoryID"`
}

type MenuItem struct {
	gorm.Model
	RestaurantID uint         `json:"restaurant_id"`
	CategoryID   uint         `json:"category_id"`
	Category     MenuCategory `json:"-" gorm:"foreignKey:CategoryID"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	ImageURL     string       `json:"image_url"`
	IsVegetarian bool         `json:"is_vegetarian"`
	IsAvailable  bool         `json:"is_available" gorm:"default:true"`
	Discount     float64      `json:"discount"` // Discount percentage
	FinalPrice   float64      `json:"final_price" gorm:"-"`
}

func (m *MenuItem) AfterFind(tx *gorm.DB) (err error) {
	m.FinalPrice = m.Price - (m.Price * m.Discount / 100)
	return
}
