package controllers

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/availability"
	"github.com/dineopen/reservation-app/db"
	"github.com/dineopen/reservation-app/redis"
	"github.com/dineopen/reservation-app/utils"
)

func newReporter() *availability.Reporter {
	return availability.NewReporter(availability.NewGormStore(db.DB), utils.AppLocation())
}

func parseAvailabilityQuery(c *fiber.Ctx) (time.Time, int, uint, error) {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation(availability.DateFormat, dateStr, utils.AppLocation())
	if err != nil {
		return time.Time{}, 0, 0, errors.New("invalid date format, use YYYY-MM-DD")
	}

	partySize, err := strconv.Atoi(c.Query("party_size", "2"))
	if err != nil || partySize < 1 {
		return time.Time{}, 0, 0, errors.New("party_size must be a positive number")
	}

	restaurantID := 0
	if v := c.Query("restaurant_id"); v != "" {
		restaurantID, err = strconv.Atoi(v)
		if err != nil || restaurantID < 0 {
			return time.Time{}, 0, 0, errors.New("invalid restaurant_id")
		}
	}

	return date, partySize, uint(restaurantID), nil
}

// GetAvailability returns every slot for a date with its availability, up
// to three recommended alternatives, and the status of an optional
// preferred time.
func GetAvailability(c *fiber.Ctx) error {
	date, partySize, restaurantID, err := parseAvailabilityQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}
	preferredTime := c.Query("time")

	// Reports without a preferred time are cacheable; preferred-time lookups
	// reuse the same computation so they stay consistent.
	if preferredTime == "" {
		if cached := redis.GetAvailability(restaurantID, date.Format(availability.DateFormat), partySize); cached != "" {
			c.Set("X-Cache", "hit")
			c.Set("Content-Type", "application/json")
			return c.SendString(cached)
		}
	}

	report, err := newReporter().Recommend(restaurantID, date, partySize, preferredTime)
	if err != nil {
		return availabilityError(c, err)
	}

	if preferredTime == "" {
		if body, err := json.Marshal(report); err == nil {
			redis.SetAvailability(restaurantID, report.Date, partySize, string(body))
		}
	}

	return c.JSON(report)
}

// CheckAvailability answers whether one exact (date, time, party size) is
// bookable right now.
func CheckAvailability(c *fiber.Ctx) error {
	date, partySize, restaurantID, err := parseAvailabilityQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}
	timeStr := c.Query("time")
	if timeStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "time is required, use HH:MM",
		})
	}

	ok, reason, err := newReporter().CheckSlot(restaurantID, date, timeStr, partySize)
	if err != nil {
		return availabilityError(c, err)
	}

	resp := fiber.Map{
		"date":       date.Format(availability.DateFormat),
		"time":       timeStr,
		"party_size": partySize,
		"available":  ok,
	}
	if reason != "" {
		resp["reason"] = reason
	}
	return c.JSON(resp)
}

// availabilityError maps reporter errors onto HTTP statuses. Store read
// failures surface as 503 with the error detail kept for diagnostics.
func availabilityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrPastDate), errors.Is(err, availability.ErrInvalidPartySize):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Could not determine availability",
			Error:   err.Error(),
		})
	}
}
