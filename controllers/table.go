package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/db"
	"github.com/dineopen/reservation-app/models"
	"github.com/dineopen/reservation-app/utils"
)

// GetAllTables godoc
func GetAllTables(c *fiber.Ctx) error {
	var tables []models.Table
	if err := db.DB.Order("capacity asc").Find(&tables).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch tables",
			Error:   err.Error(),
		})
	}
	return c.JSON(tables)
}

// CreateTable godoc
func CreateTable(c *fiber.Ctx) error {
	table := new(models.Table)
	if err := c.BodyParser(table); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if table.Capacity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "capacity must be at least 1",
		})
	}
	if err := db.DB.Create(table).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create table",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(table)
}

// UpdateTable godoc
func UpdateTable(c *fiber.Ctx) error {
	id := c.Params("id")
	var table models.Table
	if err := db.DB.First(&table, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Table not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&table); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if table.Capacity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "capacity must be at least 1",
		})
	}
	if err := db.DB.Save(&table).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update table",
			Error:   err.Error(),
		})
	}
	return c.JSON(table)
}

// DeleteTable godoc
func DeleteTable(c *fiber.Ctx) error {
	id := c.Params("id")
	var table models.Table
	if err := db.DB.First(&table, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Table not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&table).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete table",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
