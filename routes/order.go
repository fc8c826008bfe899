package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/controllers"
	"github.com/dineopen/reservation-app/middleware"
	"github.com/dineopen/reservation-app/models"
)

// SetupOrderRoutes configures all order related routes
func SetupOrderRoutes(app *fiber.App) {
	order := app.Group("/orders")
	order.Post("/", controllers.CreateOrder)
	order.Get("/:id", controllers.GetOrder)

	order.Get("/", middleware.Protected(),
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.GetAllOrders)
	order.Patch("/:id/status", middleware.Protected(),
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.UpdateOrderStatus)
}
