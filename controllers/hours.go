package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/availability"
	"github.com/dineopen/reservation-app/db"
	"github.com/dineopen/reservation-app/models"
	"github.com/dineopen/reservation-app/utils"
)

// GetBusinessHours retrieves the weekly hours rows.
func GetBusinessHours(c *fiber.Ctx) error {
	var hours []models.BusinessHours
	if err := db.DB.Order("day_of_week asc").Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get business hours",
			Error:   err.Error(),
		})
	}
	return c.JSON(hours)
}

// UpsertBusinessHours creates or replaces the hours row for one weekday.
func UpsertBusinessHours(c *fiber.Ctx) error {
	input := new(models.BusinessHours)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.DayOfWeek < models.Sunday || input.DayOfWeek > models.Saturday {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "day_of_week must be 0 (Sunday) through 6 (Saturday)",
		})
	}

	var existing models.BusinessHours
	result := db.DB.Where("restaurant_id = ? AND day_of_week = ?",
		input.RestaurantID, input.DayOfWeek).First(&existing)
	if result.RowsAffected > 0 {
		existing.OpenTime = input.OpenTime
		existing.CloseTime = input.CloseTime
		existing.IsClosed = input.IsClosed
		if err := db.DB.Save(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update business hours",
				Error:   err.Error(),
			})
		}
		return c.JSON(existing)
	}

	if err := db.DB.Create(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create business hours",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(input)
}

// UpdateRestaurantSettings patches the restaurant's flat hours settings and
// weekly hours document.
func UpdateRestaurantSettings(c *fiber.Ctx) error {
	var restaurant models.Restaurant
	if err := db.DB.First(&restaurant).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restaurant not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&restaurant).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update settings",
			Error:   err.Error(),
		})
	}
	return c.JSON(restaurant)
}

// GetResolvedHours previews the hours configuration the resolver would use
// for a date. Lets staff verify what the precedence chain picks before a
// guest ever sees it.
func GetResolvedHours(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation(availability.DateFormat, dateStr, utils.AppLocation())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "invalid date format, use YYYY-MM-DD",
		})
	}

	resolver := availability.NewResolver(availability.NewGormStore(db.DB))
	cfg := resolver.Resolve(0, date)
	return c.JSON(fiber.Map{
		"date":   dateStr,
		"config": cfg,
		"slots":  availability.GenerateSlots(cfg),
	})
}

// GetClosures godoc
func GetClosures(c *fiber.Ctx) error {
	var closures []models.Closure
	if err := db.DB.Order("date asc").Find(&closures).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch closures",
			Error:   err.Error(),
		})
	}
	return c.JSON(closures)
}

// CreateClosure godoc
func CreateClosure(c *fiber.Ctx) error {
	closure := new(models.Closure)
	if err := c.BodyParser(closure); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if _, err := time.Parse(availability.DateFormat, closure.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date must be YYYY-MM-DD",
		})
	}
	if err := db.DB.Create(closure).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create closure",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(closure)
}

// DeleteClosure godoc
func DeleteClosure(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.Closure{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete closure",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
