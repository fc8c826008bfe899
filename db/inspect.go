package db

import (
	"fmt"
)

// Inspect prints which schema generations are present in the connected
// database. Useful against older installs that still carry the legacy
// hours tables. Invoked via "go run . inspect".
func Inspect() {
	tables := []string{
		"users",
		"restaurants",
		"business_hours",
		"opening_hours",
		"restaurant_hours",
		"closures",
		"tables",
		"reservations",
		"menu_categories",
		"menu_items",
		"orders",
		"order_items",
	}

	migrator := DB.Migrator()
	for _, name := range tables {
		if !migrator.HasTable(name) {
			fmt.Printf("%-20s missing\n", name)
			continue
		}
		var count int64
		if err := DB.Table(name).Count(&count).Error; err != nil {
			fmt.Printf("%-20s present (count failed: %v)\n", name, err)
			continue
		}
		fmt.Printf("%-20s present, %d rows\n", name, count)
	}
}
