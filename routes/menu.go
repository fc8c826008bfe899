package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/controllers"
	"github.com/dineopen/reservation-app/middleware"
	"github.com/dineopen/reservation-app/models"
)

// SetupMenuRoutes configures public menu browsing and admin menu management
func SetupMenuRoutes(app *fiber.App) {
	menu := app.Group("/menu")
	menu.Get("/", controllers.GetMenu)
	menu.Get("/categories/:id", controllers.GetMenuCategory)

	admin := menu.Group("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	admin.Post("/categories", controllers.CreateMenuCategory)
	admin.Patch("/categories/:id", controllers.UpdateMenuCategory)
	admin.Delete("/categories/:id", controllers.DeleteMenuCategory)
	admin.Post("/items", controllers.CreateMenuItem)
	admin.Patch("/items/:id", controllers.UpdateMenuItem)
	admin.Delete("/items/:id", controllers.DeleteMenuItem)
	admin.Post("/items/:id/image", controllers.UploadMenuItemImage)
}
