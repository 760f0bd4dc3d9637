package middleware

import (
	"net/http"
	"time"

	"github.com/Yogeshjindal/RestaurantApplication/authz"
	"github.com/Yogeshjindal/RestaurantApplication/config"
	"github.com/Yogeshjindal/RestaurantApplication/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie carrying the signed token
const CookieName = "token"

const tokenLifetime = 7 * 24 * time.Hour

type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token bound to a user id
func GenerateToken(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// SetAuthCookie writes the session cookie. Secure + cross-site in release
// mode, lax otherwise, matching the browser frontend deployment.
func SetAuthCookie(c *gin.Context, token string) {
	secure := gin.Mode() == gin.ReleaseMode
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(CookieName, token, int(tokenLifetime.Seconds()), "/", "", secure, true)
}

// ClearAuthCookie expires the session cookie
func ClearAuthCookie(c *gin.Context) {
	secure := gin.Mode() == gin.ReleaseMode
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}

// AuthRequired resolves the caller from the session cookie and injects the
// identity into the request context. The token only carries the user id;
// role, name and email are loaded fresh so deactivation takes effect
// immediately.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Not authenticated"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil || !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not found or inactive"})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("name", user.Name)
		c.Set("email", user.Email)
		c.Set("role", string(user.Role))
		c.Next()
	}
}

// RequireAction gates a route on the capability table
func RequireAction(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Not authenticated"})
			c.Abort()
			return
		}
		role := models.UserRole(roleVal.(string))
		if !authz.Allow(role, action) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Access denied. Required role: " + authz.DescribeRoles(action),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get("role")
	return models.UserRole(val.(string))
}

// GetName extracts the caller display name from context
func GetName(c *gin.Context) string {
	val, _ := c.Get("name")
	return val.(string)
}

// GetEmail extracts the caller account email from context
func GetEmail(c *gin.Context) string {
	val, _ := c.Get("email")
	return val.(string)
}
