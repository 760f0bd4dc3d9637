package routes

import (
	"github.com/Yogeshjindal/RestaurantApplication/authz"
	"github.com/Yogeshjindal/RestaurantApplication/handlers"
	"github.com/Yogeshjindal/RestaurantApplication/middleware"
	"github.com/Yogeshjindal/RestaurantApplication/models"
	"github.com/Yogeshjindal/RestaurantApplication/notify"
	"github.com/Yogeshjindal/RestaurantApplication/realtime"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, notifier *notify.Dispatcher, hub *realtime.Hub) {
	reservations := handlers.NewReservationHandler(notifier)

	// ── Auth ───────────────────────────────────────────────────────
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.POST("/logout", handlers.Logout)
		auth.GET("/me", middleware.AuthRequired(), handlers.GetMe)

		// Role-narrowed login variants
		auth.POST("/admin/login", handlers.RoleLogin(models.RoleAdmin))
		auth.POST("/staff/login", handlers.RoleLogin(models.RoleStaff))
		auth.POST("/customer/login", handlers.RoleLogin(models.RoleCustomer))
	}

	// ── Menu ───────────────────────────────────────────────────────
	menu := r.Group("/menu")
	{
		// Public catalog reads
		menu.GET("", handlers.ListMenuItems)
		menu.GET("/:id", handlers.GetMenuItem)

		// Admin/staff writes
		menu.POST("", middleware.AuthRequired(), middleware.RequireAction(authz.WriteMenuItem), handlers.CreateMenuItem)
		menu.PUT("/:id", middleware.AuthRequired(), middleware.RequireAction(authz.WriteMenuItem), handlers.UpdateMenuItem)
		menu.PATCH("/:id/toggle", middleware.AuthRequired(), middleware.RequireAction(authz.WriteMenuItem), handlers.ToggleMenuItemAvailability)

		// Admin only
		menu.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAction(authz.DeleteMenuItem), handlers.DeleteMenuItem)
	}

	// ── Reservations ───────────────────────────────────────────────
	reservation := r.Group("/reservation")
	reservation.Use(middleware.AuthRequired())
	{
		reservation.POST("", middleware.RequireAction(authz.CreateReservation), reservations.Create)

		// Specific routes before the dynamic :id routes
		reservation.GET("/my-reservations", middleware.RequireAction(authz.ListOwnReservations), reservations.GetMine)
		reservation.GET("/all", middleware.RequireAction(authz.ListReservations), reservations.ListAll)

		reservation.GET("/:id", reservations.GetOne)
		reservation.PUT("/:id/status", middleware.RequireAction(authz.UpdateReservation), reservations.UpdateStatus)
		reservation.DELETE("/:id", middleware.RequireAction(authz.DeleteReservation), reservations.Delete)
	}

	// ── Realtime dashboard channel ─────────────────────────────────
	r.GET("/ws", hub.HandleWS)
}
