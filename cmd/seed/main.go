// Seeds the database with the default accounts and a sample menu.
// Wipes existing users and menu items first.
package main

import (
	"log"

	"github.com/Yogeshjindal/RestaurantApplication/config"
	"github.com/Yogeshjindal/RestaurantApplication/models"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	name     string
	email    string
	password string
	role     models.UserRole
	phone    string
}

var seedUsers = []seedUser{
	{"Admin User", "admin@restaurant.com", "admin123", models.RoleAdmin, "1234567890"},
	{"Staff User", "staff@restaurant.com", "staff123", models.RoleStaff, "0987654321"},
	{"Customer User", "customer@restaurant.com", "customer123", models.RoleCustomer, ""},
}

var seedMenu = []models.MenuItem{
	{
		Name:            "Caesar Salad",
		Description:     "Fresh romaine lettuce with parmesan cheese, croutons, and caesar dressing",
		Price:           12.99,
		Category:        models.CategorySalad,
		IsAvailable:     true,
		PreparationTime: 10,
		Ingredients:     []string{"romaine lettuce", "parmesan", "croutons", "caesar dressing"},
		Allergens:       []string{"dairy", "gluten"},
	},
	{
		Name:            "Tomato Basil Soup",
		Description:     "Slow-simmered tomato soup finished with fresh basil and cream",
		Price:           8.49,
		Category:        models.CategorySoup,
		IsAvailable:     true,
		PreparationTime: 12,
		Ingredients:     []string{"tomato", "basil", "cream", "garlic"},
		Allergens:       []string{"dairy"},
	},
	{
		Name:            "Bruschetta",
		Description:     "Grilled bread topped with marinated tomatoes, garlic, and olive oil",
		Price:           9.99,
		Category:        models.CategoryAppetizer,
		IsAvailable:     true,
		PreparationTime: 8,
		Ingredients:     []string{"bread", "tomato", "garlic", "olive oil"},
		Allergens:       []string{"gluten"},
	},
	{
		Name:            "Grilled Salmon",
		Description:     "Atlantic salmon fillet with lemon butter sauce and seasonal vegetables",
		Price:           24.99,
		Category:        models.CategoryMainCourse,
		IsAvailable:     true,
		PreparationTime: 25,
		Ingredients:     []string{"salmon", "lemon", "butter", "seasonal vegetables"},
		Allergens:       []string{"fish", "dairy"},
	},
	{
		Name:            "Margherita Pizza",
		Description:     "Wood-fired pizza with fresh mozzarella, tomatoes, and basil",
		Price:           16.99,
		Category:        models.CategoryMainCourse,
		IsAvailable:     true,
		PreparationTime: 20,
		Ingredients:     []string{"dough", "mozzarella", "tomato", "basil"},
		Allergens:       []string{"gluten", "dairy"},
	},
	{
		Name:            "Chocolate Lava Cake",
		Description:     "Warm chocolate cake with a molten center, served with vanilla ice cream",
		Price:           10.99,
		Category:        models.CategoryDessert,
		IsAvailable:     true,
		PreparationTime: 15,
		Ingredients:     []string{"chocolate", "flour", "eggs", "vanilla ice cream"},
		Allergens:       []string{"gluten", "dairy", "eggs"},
	},
	{
		Name:            "Fresh Lemonade",
		Description:     "House-made lemonade with fresh mint",
		Price:           4.99,
		Category:        models.CategoryBeverage,
		IsAvailable:     true,
		PreparationTime: 5,
		Ingredients:     []string{"lemon", "sugar", "mint"},
	},
}

func main() {
	config.InitDB()

	if err := config.DB.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		log.Fatal("Failed to clear users:", err)
	}
	if err := config.DB.Where("1 = 1").Delete(&models.MenuItem{}).Error; err != nil {
		log.Fatal("Failed to clear menu items:", err)
	}
	log.Println("Cleared existing data")

	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		user := models.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
			Phone:        su.phone,
			IsActive:     true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatal("Failed to create user:", err)
		}
		log.Printf("Created %s user: %s", su.role, su.email)
	}

	for i := range seedMenu {
		if err := config.DB.Create(&seedMenu[i]).Error; err != nil {
			log.Fatal("Failed to create menu item:", err)
		}
	}
	log.Printf("Created %d menu items", len(seedMenu))
	log.Println("Seeding complete")
}
