package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dineopen/reservation-app/db"
	"github.com/dineopen/reservation-app/models"
	"github.com/dineopen/reservation-app/utils"
)

// GetMenu returns the full menu grouped by category.
func GetMenu(c *fiber.Ctx) error {
	var categories []models.MenuCategory
	if err := db.DB.Preload("Items", "is_available = ?", true).
		Order("sort_order asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch menu",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// GetMenuCategory returns one category and its available items.
func GetMenuCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.MenuCategory
	if err := db.DB.Preload("Items", "is_available = ?", true).First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(category)
}

// CreateMenuCategory godoc
func CreateMenuCategory(c *fiber.Ctx) error {
	category := new(models.MenuCategory)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create category",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateMenuCategory godoc
func UpdateMenuCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.MenuCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update category",
			Error:   err.Error(),
		})
	}
	return c.JSON(category)
}

// DeleteMenuCategory godoc
func DeleteMenuCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.MenuCategory{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete category",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMenuItem godoc
func CreateMenuItem(c *fiber.Ctx) error {
	item := new(models.MenuItem)
	if err := c.BodyParser(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	var category models.MenuCategory
	if err := db.DB.First(&category, item.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create menu item",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateMenuItem godoc
func UpdateMenuItem(c *fiber.Ctx) error {
	id := c.Params("id")
	var item models.MenuItem
	if err := db.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Menu item not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update menu item",
			Error:   err.Error(),
		})
	}
	return c.JSON(item)
}

// DeleteMenuItem godoc
func DeleteMenuItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete menu item",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadMenuItemImage stores an item photo on Cloudinary and saves the URL.
func UploadMenuItemImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var item models.MenuItem
	if err := db.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Menu item not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "image file is required",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to read uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("menu-item-%d", item.ID), "menu")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	item.ImageURL = url
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
			Error:   err.Error(),
		})
	}
	return c.JSON(item)
}
