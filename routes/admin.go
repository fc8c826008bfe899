package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/controllers"
	"github.com/dineopen/reservation-app/middleware"
	"github.com/dineopen/reservation-app/models"
)

// SetupAdminRoutes configures table, hours and closure management
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/tables", controllers.GetAllTables)
	admin.Post("/tables", controllers.CreateTable)
	admin.Patch("/tables/:id", controllers.UpdateTable)
	admin.Delete("/tables/:id", controllers.DeleteTable)

	admin.Get("/hours", controllers.GetBusinessHours)
	admin.Put("/hours", controllers.UpsertBusinessHours)
	admin.Get("/hours/resolved", controllers.GetResolvedHours)
	admin.Patch("/settings", controllers.UpdateRestaurantSettings)

	admin.Get("/closures", controllers.GetClosures)
	admin.Post("/closures", controllers.CreateClosure)
	admin.Delete("/closures/:id", controllers.DeleteClosure)
}
