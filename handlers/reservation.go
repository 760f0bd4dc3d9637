package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Yogeshjindal/RestaurantApplication/apperr"
	"github.com/Yogeshjindal/RestaurantApplication/config"
	"github.com/Yogeshjindal/RestaurantApplication/middleware"
	"github.com/Yogeshjindal/RestaurantApplication/models"
	"github.com/Yogeshjindal/RestaurantApplication/notify"

	"github.com/gin-gonic/gin"
)

// ReservationHandler carries the notification dispatcher so status-change
// side effects stay mockable in tests.
type ReservationHandler struct {
	Notifier *notify.Dispatcher
}

func NewReservationHandler(notifier *notify.Dispatcher) *ReservationHandler {
	return &ReservationHandler{Notifier: notifier}
}

type CreateReservationRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	PartySize       int    `json:"party_size"`
	SpecialRequests string `json:"special_requests"`
	OrderItems      []struct {
		MenuItemID          uint   `json:"menu_item_id"`
		Quantity            int    `json:"quantity"`
		SpecialInstructions string `json:"special_instructions"`
	} `json:"order_items"`
}

type UpdateReservationStatusRequest struct {
	Status      models.ReservationStatus `json:"status"`
	TableNumber string                   `json:"table_number"`
	Notes       string                   `json:"notes"`
}

// splitName derives first/last name from a display name: first token is the
// first name, the remaining tokens joined are the last name.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// Create books a new reservation for the calling customer. Missing identity
// fields default from the caller's account; every still-missing required
// field is reported in one error. Order lines snapshot the menu price at
// creation time, short-circuiting before anything is persisted.
func (h *ReservationHandler) Create(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}

	callerFirst, callerLast := splitName(middleware.GetName(c))
	firstName := req.FirstName
	if firstName == "" {
		firstName = callerFirst
	}
	lastName := req.LastName
	if lastName == "" {
		lastName = callerLast
	}
	email := req.Email
	if email == "" {
		email = middleware.GetEmail(c)
	}

	var missing []string
	if firstName == "" {
		missing = append(missing, "firstName")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if req.PartySize == 0 {
		missing = append(missing, "partySize")
	}
	if len(missing) > 0 {
		fail(c, apperr.Validation("Missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	if req.PartySize < models.MinPartySize || req.PartySize > models.MaxPartySize {
		fail(c, apperr.Validation(fmt.Sprintf("Party size must be between %d and %d", models.MinPartySize, models.MaxPartySize)))
		return
	}

	var orderItems []models.ReservationItem
	var totalAmount float64
	for _, reqItem := range req.OrderItems {
		if reqItem.Quantity < 1 {
			fail(c, apperr.Validation("Order item quantity must be at least 1"))
			return
		}
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
			fail(c, apperr.NotFound(fmt.Sprintf("Menu item with ID %d not found", reqItem.MenuItemID)))
			return
		}
		if !menuItem.IsAvailable {
			fail(c, apperr.Validation("Menu item "+menuItem.Name+" is not available"))
			return
		}
		totalAmount += menuItem.Price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.ReservationItem{
			MenuItemID:          menuItem.ID,
			Quantity:            reqItem.Quantity,
			Price:               menuItem.Price,
			Name:                menuItem.Name,
			SpecialInstructions: reqItem.SpecialInstructions,
		})
	}

	reservation := models.Reservation{
		CustomerID:      customerID,
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.PartySize,
		OrderItems:      orderItems,
		TotalAmount:     totalAmount,
		Status:          models.StatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := config.DB.Create(&reservation).Error; err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, "Reservation created successfully!", reservation)
}

// ListAll returns every reservation with customer and menu-item projections,
// optionally filtered by exact status and date (admin/staff)
func (h *ReservationHandler) ListAll(c *gin.Context) {
	var reservations []models.Reservation
	query := config.DB.Preload("Customer").Preload("OrderItems.MenuItem")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	query.Order("date desc, time desc").Find(&reservations)
	respondList(c, http.StatusOK, len(reservations), reservations)
}

// GetMine returns the calling customer's own reservations
func (h *ReservationHandler) GetMine(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var reservations []models.Reservation
	config.DB.Preload("OrderItems.MenuItem").
		Where("customer_id = ?", customerID).
		Order("date desc, time desc").
		Find(&reservations)
	respondList(c, http.StatusOK, len(reservations), reservations)
}

// GetOne returns a single reservation. Customers may only read their own.
func (h *ReservationHandler) GetOne(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.Preload("Customer").Preload("OrderItems.MenuItem").
		First(&reservation, c.Param("id")).Error; err != nil {
		fail(c, apperr.NotFound("Reservation not found"))
		return
	}

	if middleware.GetRole(c) == models.RoleCustomer && reservation.CustomerID != middleware.GetUserID(c) {
		fail(c, apperr.Forbidden("Access denied"))
		return
	}

	respond(c, http.StatusOK, "", reservation)
}

// UpdateStatus applies a new status (plus optional table number and staff
// notes) with no transition-graph restriction, then schedules email and
// live-push notification. Notification failures never affect the response.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}
	if req.Status == "" {
		fail(c, apperr.Validation("Status is required"))
		return
	}
	if !models.ValidStatus(req.Status) {
		fail(c, apperr.Validation("Invalid status"))
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		fail(c, apperr.NotFound("Reservation not found"))
		return
	}

	reservation.Status = req.Status
	if req.TableNumber != "" {
		reservation.TableNumber = req.TableNumber
	}
	if req.Notes != "" {
		reservation.Notes = req.Notes
	}
	if err := config.DB.Model(&reservation).Updates(map[string]interface{}{
		"status":       reservation.Status,
		"table_number": reservation.TableNumber,
		"notes":        reservation.Notes,
	}).Error; err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Reservation updated successfully", reservation)

	h.Notifier.StatusChanged(notify.StatusChange{
		ReservationID: reservation.ID,
		Email:         reservation.Email,
		Name:          reservation.FirstName,
		Status:        reservation.Status,
		Date:          reservation.Date,
		Time:          reservation.Time,
	})
}

// Delete removes a reservation (admin only)
func (h *ReservationHandler) Delete(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		fail(c, apperr.NotFound("Reservation not found"))
		return
	}
	if err := config.DB.Select("OrderItems").Delete(&reservation).Error; err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Reservation deleted successfully", nil)
}
