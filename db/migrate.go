package db

import (
	"fmt"
	"log"

	"github.com/dineopen/reservation-app/models"
)

// Migrate runs AutoMigrate for every table. Invoked explicitly via
// "go run . migrate", never on normal startup.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.BusinessHours{},
		&models.OpeningHours{},
		&models.RestaurantHours{},
		&models.Closure{},
		&models.Table{},
		&models.Reservation{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
