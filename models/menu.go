package models

import "time"

// MenuCategory is the fixed set of menu sections
type MenuCategory string

const (
	CategoryAppetizer  MenuCategory = "appetizer"
	CategoryMainCourse MenuCategory = "main_course"
	CategoryDessert    MenuCategory = "dessert"
	CategoryBeverage   MenuCategory = "beverage"
	CategorySalad      MenuCategory = "salad"
	CategorySoup       MenuCategory = "soup"
)

// ValidCategory reports whether c is one of the six fixed categories.
func ValidCategory(c MenuCategory) bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert,
		CategoryBeverage, CategorySalad, CategorySoup:
		return true
	}
	return false
}

// NutritionInfo is optional per-item nutrition data, embedded in MenuItem
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type MenuItem struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Name            string        `json:"name" gorm:"not null"`
	Description     string        `json:"description" gorm:"not null"`
	Price           float64       `json:"price" gorm:"not null"`
	Category        MenuCategory  `json:"category" gorm:"not null"`
	Image           string        `json:"image"`
	IsAvailable     bool          `json:"is_available"`
	PreparationTime int           `json:"preparation_time" gorm:"default:15"` // minutes
	Ingredients     []string      `json:"ingredients" gorm:"serializer:json"`
	Allergens       []string      `json:"allergens" gorm:"serializer:json"`
	Nutrition       NutritionInfo `json:"nutrition" gorm:"embedded;embeddedPrefix:nutrition_"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
