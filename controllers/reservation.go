package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dineopen/reservation-app/availability"
	"github.com/dineopen/reservation-app/db"
	"github.com/dineopen/reservation-app/models"
	"github.com/dineopen/reservation-app/redis"
	"github.com/dineopen/reservation-app/utils"
)

type createReservationInput struct {
	RestaurantID  uint   `json:"restaurant_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"` // "HH:MM"
	PartySize     int    `json:"party_size"`
	Notes         string `json:"notes"`
}

// GetAllReservations godoc
func GetAllReservations(c *fiber.Ctx) error {
	var reservations []models.Reservation
	q := db.DB.Preload("Table")
	if date := c.Query("date"); date != "" {
		loc := utils.AppLocation()
		day, err := time.ParseInLocation(availability.DateFormat, date, loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date format, use YYYY-MM-DD",
			})
		}
		q = q.Where("reservation_time >= ? AND reservation_time < ?", day, day.Add(24*time.Hour))
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("reservation_time asc").Find(&reservations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reservations",
			Error:   err.Error(),
		})
	}
	return c.JSON(reservations)
}

// GetReservation godoc
func GetReservation(c *fiber.Ctx) error {
	id := c.Params("id")
	var reservation models.Reservation
	if err := db.DB.Preload("Table").First(&reservation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Reservation not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(reservation)
}

// GetReservationByCode looks a reservation up by its confirmation code.
func GetReservationByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	var reservation models.Reservation
	if err := db.DB.Preload("Table").Where("code = ?", code).First(&reservation).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Reservation not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(reservation)
}

// CreateReservation books a table. The availability check runs once up
// front for a fast rejection, then again inside the transaction right
// before the insert. Two concurrent requests can still both pass the
// check; the re-check narrows the window but does not close it.
func CreateReservation(c *fiber.Ctx) error {
	input := new(createReservationInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.CustomerName == "" || input.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "customer_name and customer_email are required",
		})
	}
	if input.PartySize < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "party_size must be at least 1",
		})
	}

	loc := utils.AppLocation()
	date, err := time.ParseInLocation(availability.DateFormat, input.Date, loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date format, use YYYY-MM-DD",
		})
	}
	clock, err := time.Parse(availability.TimeFormat, input.Time)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid time format, use HH:MM",
		})
	}
	reservationTime := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, loc)

	reporter := newReporter()
	ok, reason, err := reporter.CheckSlot(input.RestaurantID, date, input.Time, input.PartySize)
	if err != nil {
		return availabilityError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available",
			Error:   reason,
		})
	}

	reservation := models.Reservation{
		RestaurantID:    input.RestaurantID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ReservationTime: reservationTime,
		PartySize:       input.PartySize,
		Notes:           input.Notes,
		Status:          models.StatusPending,
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		reservation.UserID = &userID
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := availability.NewGormStore(tx)
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
		existing, err := store.ActiveReservations(input.RestaurantID, dayStart, dayStart.Add(24*time.Hour))
		if err != nil {
			return err
		}
		if availability.HasConflict(reservationTime, existing) {
			return fmt.Errorf("time slot not available")
		}

		tables, err := store.ActiveTables(input.RestaurantID)
		if err != nil {
			return err
		}
		free := availability.AvailableTables(reservationTime, input.PartySize, existing, tables)
		if len(free) == 0 {
			return fmt.Errorf("no table can seat a party of %d at this time", input.PartySize)
		}
		if free[0].ID != 0 {
			reservation.TableID = &free[0].ID
		}

		return tx.Create(&reservation).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available or failed to create reservation",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAvailability(input.RestaurantID, input.Date)

	emailBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your reservation request has been received.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Party size:</strong> %d</li>
			<li><strong>Confirmation code:</strong> %s</li>
		</ul>
		<p>We will confirm your table shortly.</p>
	`, reservation.CustomerName, input.Date, input.Time, reservation.PartySize, reservation.Code)
	if err := utils.SendEmail(reservation.CustomerEmail, "Reservation received", emailBody); err != nil {
		fmt.Println("Failed to send reservation email:", err)
	}

	return c.Status(fiber.StatusCreated).JSON(reservation)
}

type statusInput struct {
	Status models.ReservationStatus `json:"status"`
}

// UpdateReservationStatus applies a guarded status transition.
func UpdateReservationStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var reservation models.Reservation
	if err := db.DB.First(&reservation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Reservation not found",
			Error:   err.Error(),
		})
	}

	if err := reservation.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAvailability(reservation.RestaurantID,
		reservation.ReservationTime.In(utils.AppLocation()).Format(availability.DateFormat))

	return c.JSON(reservation)
}

// CancelReservation cancels by confirmation code, so guests can cancel
// without an account.
func CancelReservation(c *fiber.Ctx) error {
	code := c.Params("code")
	var reservation models.Reservation
	if err := db.DB.Where("code = ?", code).First(&reservation).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Reservation not found",
			Error:   err.Error(),
		})
	}

	if err := reservation.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Reservation cannot be cancelled",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAvailability(reservation.RestaurantID,
		reservation.ReservationTime.In(utils.AppLocation()).Format(availability.DateFormat))

	return c.JSON(reservation)
}
