package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dineopen/reservation-app/db"
	"github.com/dineopen/reservation-app/models"
	"github.com/dineopen/reservation-app/utils"
)

type createOrderInput struct {
	RestaurantID  uint   `json:"restaurant_id"`
	ReservationID *uint  `json:"reservation_id"`
	Notes         string `json:"notes"`
	Items         []struct {
		MenuItemID uint `json:"menu_item_id"`
		Quantity   int  `json:"quantity"`
	} `json:"items"`
}

// CreateOrder places a food order. Prices are snapshotted from the menu at
// order time inside a transaction.
func CreateOrder(c *fiber.Ctx) error {
	input := new(createOrderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Order must contain at least one item",
		})
	}

	order := models.Order{
		RestaurantID:  input.RestaurantID,
		ReservationID: input.ReservationID,
		Notes:         input.Notes,
		Status:        models.OrderPlaced,
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		order.UserID = &userID
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if input.ReservationID != nil {
			var reservation models.Reservation
			if err := tx.First(&reservation, *input.ReservationID).Error; err != nil {
				return fmt.Errorf("reservation not found")
			}
			if !reservation.IsActive() {
				return fmt.Errorf("reservation is not active")
			}
		}

		total := 0.0
		for _, line := range input.Items {
			if line.Quantity < 1 {
				return fmt.Errorf("quantity must be at least 1")
			}
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, line.MenuItemID).Error; err != nil {
				return fmt.Errorf("menu item %d not found", line.MenuItemID)
			}
			if !menuItem.IsAvailable {
				return fmt.Errorf("menu item %q is not available", menuItem.Name)
			}
			order.Items = append(order.Items, models.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   line.Quantity,
				UnitPrice:  menuItem.FinalPrice,
			})
			total += menuItem.FinalPrice * float64(line.Quantity)
		}
		order.Total = total

		return tx.Create(&order).Error
	})
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to place order",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetOrder godoc
func GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	var order models.Order
	if err := db.DB.Preload("Items.MenuItem").Preload("Reservation").First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(order)
}

// GetAllOrders godoc
func GetAllOrders(c *fiber.Ctx) error {
	var orders []models.Order
	q := db.DB.Preload("Items.MenuItem")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   err.Error(),
		})
	}
	return c.JSON(orders)
}

// UpdateOrderStatus applies a guarded status transition.
func UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(struct {
		Status models.OrderStatus `json:"status"`
	})
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}

	if err := order.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(order)
}
