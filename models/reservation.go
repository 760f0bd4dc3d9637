package models

import "time"

// ReservationStatus represents all possible states of a table reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// ValidStatus reports whether s is one of the four reservation statuses.
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

const (
	MinPartySize = 1
	MaxPartySize = 20
)

type Reservation struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	CustomerID      uint              `json:"customer_id" gorm:"not null"`
	Customer        User              `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	FirstName       string            `json:"first_name" gorm:"not null"`
	LastName        string            `json:"last_name"`
	Email           string            `json:"email" gorm:"not null"`
	Phone           string            `json:"phone"`
	Date            string            `json:"date" gorm:"not null"`
	Time            string            `json:"time" gorm:"not null"`
	PartySize       int               `json:"party_size" gorm:"not null"`
	OrderItems      []ReservationItem `json:"order_items,omitempty" gorm:"foreignKey:ReservationID"`
	TotalAmount     float64           `json:"total_amount" gorm:"default:0"`
	Status          ReservationStatus `json:"status" gorm:"not null;default:'pending'"`
	TableNumber     string            `json:"table_number"`
	Notes           string            `json:"notes"`
	SpecialRequests string            `json:"special_requests"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type ReservationItem struct {
	ID                  uint     `json:"id" gorm:"primaryKey"`
	ReservationID       uint     `json:"reservation_id" gorm:"not null"`
	MenuItemID          uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem            MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity            int      `json:"quantity" gorm:"not null"`
	Price               float64  `json:"price" gorm:"not null"` // snapshot price at reservation time
	Name                string   `json:"name"`                  // snapshot name
	SpecialInstructions string   `json:"special_instructions"`
}
