package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Yogeshjindal/RestaurantApplication/apperr"
	"github.com/Yogeshjindal/RestaurantApplication/config"
	"github.com/Yogeshjindal/RestaurantApplication/models"

	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	Name            *string               `json:"name"`
	Description     *string               `json:"description"`
	Price           *float64              `json:"price"`
	Category        *models.MenuCategory  `json:"category"`
	Image           *string               `json:"image"`
	IsAvailable     *bool                 `json:"is_available"`
	PreparationTime *int                  `json:"preparation_time"`
	Ingredients     []string              `json:"ingredients"`
	Allergens       []string              `json:"allergens"`
	Nutrition       *models.NutritionInfo `json:"nutrition"`
}

// validateMenuItem collects every field problem into one message, the same
// way document-level validation failures were reported in one line.
func validateMenuItem(item *models.MenuItem) error {
	var problems []string
	if n := len(item.Name); n < 2 || n > 100 {
		problems = append(problems, "name must be between 2 and 100 characters")
	}
	if item.Description == "" {
		problems = append(problems, "description is required")
	} else if len(item.Description) > 500 {
		problems = append(problems, "description cannot exceed 500 characters")
	}
	if item.Price < 0 {
		problems = append(problems, "price cannot be negative")
	}
	if !models.ValidCategory(item.Category) {
		problems = append(problems, "category must be one of: appetizer, main_course, dessert, beverage, salad, soup")
	}
	if len(problems) > 0 {
		return apperr.Validation(strings.Join(problems, ", "))
	}
	return nil
}

func applyMenuItemRequest(item *models.MenuItem, req *MenuItemRequest) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}
	if req.Ingredients != nil {
		item.Ingredients = req.Ingredients
	}
	if req.Allergens != nil {
		item.Allergens = req.Allergens
	}
	if req.Nutrition != nil {
		item.Nutrition = *req.Nutrition
	}
}

// ListMenuItems returns the catalog, optionally filtered (public)
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if isAvailable := c.Query("isAvailable"); isAvailable != "" {
		query = query.Where("is_available = ?", isAvailable == "true")
	}

	query.Order("category asc, name asc").Find(&items)
	respondList(c, http.StatusOK, len(items), items)
}

// GetMenuItem returns a single menu item (public)
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		fail(c, apperr.NotFound("Menu item not found"))
		return
	}
	respond(c, http.StatusOK, "", item)
}

// CreateMenuItem adds a catalog entry (admin/staff)
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}

	item := models.MenuItem{
		IsAvailable:     true,
		PreparationTime: 15,
	}
	applyMenuItemRequest(&item, &req)
	if err := validateMenuItem(&item); err != nil {
		fail(c, err)
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "Menu item created successfully", item)
}

// UpdateMenuItem applies a partial update to a catalog entry (admin/staff)
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		fail(c, apperr.NotFound("Menu item not found"))
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}
	applyMenuItemRequest(&item, &req)
	if err := validateMenuItem(&item); err != nil {
		fail(c, err)
		return
	}

	if err := config.DB.Save(&item).Error; err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Menu item updated successfully", item)
}

// ToggleMenuItemAvailability flips availability (admin/staff)
func ToggleMenuItemAvailability(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		fail(c, apperr.NotFound("Menu item not found"))
		return
	}

	item.IsAvailable = !item.IsAvailable
	if err := config.DB.Save(&item).Error; err != nil {
		fail(c, err)
		return
	}

	state := "disabled"
	if item.IsAvailable {
		state = "enabled"
	}
	respond(c, http.StatusOK, fmt.Sprintf("Menu item %s successfully", state), item)
}

// DeleteMenuItem removes a catalog entry (admin only)
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		fail(c, apperr.NotFound("Menu item not found"))
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Menu item deleted successfully", nil)
}
