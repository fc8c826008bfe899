package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/controllers"
	"github.com/dineopen/reservation-app/middleware"
	"github.com/dineopen/reservation-app/models"
)

// SetupReservationRoutes configures all reservation related routes
func SetupReservationRoutes(app *fiber.App) {
	reservation := app.Group("/reservations")
	reservation.Post("/", controllers.CreateReservation)
	reservation.Get("/code/:code", controllers.GetReservationByCode)
	reservation.Post("/code/:code/cancel", controllers.CancelReservation)

	reservation.Get("/", middleware.Protected(),
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.GetAllReservations)
	reservation.Get("/:id", middleware.Protected(),
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.GetReservation)
	reservation.Patch("/:id/status", middleware.Protected(),
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.UpdateReservationStatus)
}
