package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/controllers"
)

// SetupAvailabilityRoutes configures the public availability endpoints
func SetupAvailabilityRoutes(app *fiber.App) {
	avail := app.Group("/availability")
	avail.Get("/", controllers.GetAvailability)
	avail.Get("/check", controllers.CheckAvailability)
}
