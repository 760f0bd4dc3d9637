package handlers

import (
	"net/http"

	"github.com/Yogeshjindal/RestaurantApplication/apperr"
	"github.com/Yogeshjindal/RestaurantApplication/config"
	"github.com/Yogeshjindal/RestaurantApplication/middleware"
	"github.com/Yogeshjindal/RestaurantApplication/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
	Phone    string          `json:"phone"`
}

type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

// userView is the projection returned by auth endpoints
func userView(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// Register creates a new user account. Role defaults to customer; phone is
// mandatory for admin and staff accounts.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		fail(c, apperr.Validation("Please provide name, email and password"))
		return
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		fail(c, apperr.Validation("Invalid role. Must be admin, staff, or customer"))
		return
	}
	if (req.Role == models.RoleAdmin || req.Role == models.RoleStaff) && req.Phone == "" {
		fail(c, apperr.Validation("Phone number is required for admin and staff"))
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		fail(c, apperr.Conflict("Email already in use"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		fail(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	middleware.SetAuthCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    userView(&user),
	})
}

// Login authenticates a user and sets the session cookie. An optional role
// in the body narrows the login: a valid credential pair belonging to a
// different role is rejected naming the account's real role.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}
	if req.Email == "" || req.Password == "" {
		fail(c, apperr.Validation("Please provide email and password"))
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		fail(c, apperr.Unauthorized("Invalid credentials"))
		return
	}
	if !user.IsActive {
		fail(c, apperr.Unauthorized("Account is deactivated"))
		return
	}
	if req.Role != "" && user.Role != req.Role {
		fail(c, apperr.Forbidden("Access denied. This account is for "+string(user.Role)+" role"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, apperr.Unauthorized("Invalid credentials"))
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	middleware.SetAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in successfully",
		"user":    userView(&user),
	})
}

// RoleLogin builds the role-specific login handlers (/auth/admin/login and
// friends). The user lookup itself is narrowed by role, so a wrong-role
// account fails exactly like an unknown one.
func RoleLogin(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, apperr.Validation(err.Error()))
			return
		}
		if req.Email == "" || req.Password == "" {
			fail(c, apperr.Validation("Please provide email and password"))
			return
		}

		var user models.User
		if err := config.DB.Where("email = ? AND role = ?", req.Email, role).First(&user).Error; err != nil {
			fail(c, apperr.Unauthorized("Invalid "+string(role)+" credentials"))
			return
		}
		if !user.IsActive {
			fail(c, apperr.Unauthorized(capitalize(string(role))+" account is deactivated"))
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			fail(c, apperr.Unauthorized("Invalid "+string(role)+" credentials"))
			return
		}

		token, err := middleware.GenerateToken(user.ID)
		if err != nil {
			fail(c, err)
			return
		}
		middleware.SetAuthCookie(c, token)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": capitalize(string(role)) + " logged in successfully",
			"user":    userView(&user),
		})
	}
}

// Logout clears the session cookie
func Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// GetMe returns the authenticated caller's account
func GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		fail(c, apperr.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"is_active": user.IsActive,
		},
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
