package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Yogeshjindal/RestaurantApplication/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign session tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_app_super_secret_2024"))

// FrontendURL is the credentialed CORS origin for the dashboard
var FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")

// SMTPConfig carries mail delivery settings; Host empty means mail is
// logged instead of sent.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func SMTP() SMTPConfig {
	port, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	return SMTPConfig{
		Host: os.Getenv("SMTP_HOST"),
		Port: port,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: getEnv("SMTP_FROM", "no-reply@example.com"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// Migrate applies the schema for all models. Split out so tests can run it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.ReservationItem{},
	)
}
