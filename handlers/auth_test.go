package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Yogeshjindal/RestaurantApplication/config"
	"github.com/Yogeshjindal/RestaurantApplication/middleware"
	"github.com/Yogeshjindal/RestaurantApplication/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r, _ := setupTest(t)

	tests := []struct {
		name     string
		body     map[string]interface{}
		wantCode int
	}{
		{
			name:     "customer with defaulted role",
			body:     map[string]interface{}{"name": "Ann", "email": "ann@x.com", "password": "pw123"},
			wantCode: http.StatusCreated,
		},
		{
			name:     "duplicate email",
			body:     map[string]interface{}{"name": "Ann Again", "email": "ann@x.com", "password": "pw123"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "missing password",
			body:     map[string]interface{}{"name": "Bob", "email": "bob@x.com"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid role",
			body:     map[string]interface{}{"name": "Eve", "email": "eve@x.com", "password": "pw", "role": "owner"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "staff without phone",
			body:     map[string]interface{}{"name": "Stu", "email": "stu@x.com", "password": "pw", "role": "staff"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "staff with phone",
			body:     map[string]interface{}{"name": "Stu", "email": "stu@x.com", "password": "pw", "role": "staff", "phone": "1234567890"},
			wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/auth/register", tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register",
		map[string]interface{}{"name": "Ann", "email": "ann@x.com", "password": "pw123"})
	require.Equal(t, http.StatusCreated, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "customer", user["role"])
}

func TestLogin(t *testing.T) {
	r, _ := setupTest(t)
	createUser(t, "Ann Smith", "ann@x.com", "pw123", models.RoleCustomer)

	inactive := createUser(t, "Gone User", "gone@x.com", "pw123", models.RoleCustomer)
	require.NoError(t, config.DB.Model(&inactive).Update("is_active", false).Error)

	tests := []struct {
		name     string
		body     map[string]interface{}
		wantCode int
	}{
		{"success", map[string]interface{}{"email": "ann@x.com", "password": "pw123"}, http.StatusOK},
		{"wrong password", map[string]interface{}{"email": "ann@x.com", "password": "nope"}, http.StatusUnauthorized},
		{"unknown email", map[string]interface{}{"email": "who@x.com", "password": "pw123"}, http.StatusUnauthorized},
		{"inactive account", map[string]interface{}{"email": "gone@x.com", "password": "pw123"}, http.StatusUnauthorized},
		{"missing fields", map[string]interface{}{"email": "ann@x.com"}, http.StatusBadRequest},
		{"role mismatch in general login", map[string]interface{}{"email": "ann@x.com", "password": "pw123", "role": "admin"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestLoginRoleMismatchNamesRealRole(t *testing.T) {
	r, _ := setupTest(t)
	createUser(t, "Ann", "ann@x.com", "pw123", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/auth/login",
		map[string]interface{}{"email": "ann@x.com", "password": "pw123", "role": "staff"})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "customer")
}

func TestRoleNarrowedLogin(t *testing.T) {
	r, _ := setupTest(t)
	createUser(t, "Ann", "ann@x.com", "pw123", models.RoleCustomer)
	createUser(t, "Boss", "boss@x.com", "pw123", models.RoleAdmin)

	// Correct credentials, wrong role endpoint: rejected like an unknown account
	w := doJSON(t, r, http.MethodPost, "/auth/admin/login",
		map[string]interface{}{"email": "ann@x.com", "password": "pw123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/admin/login",
		map[string]interface{}{"email": "boss@x.com", "password": "pw123"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/customer/login",
		map[string]interface{}{"email": "ann@x.com", "password": "pw123"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/staff/login",
		map[string]interface{}{"email": "boss@x.com", "password": "pw123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMe(t *testing.T) {
	r, _ := setupTest(t)
	user := createUser(t, "Ann", "ann@x.com", "pw123", models.RoleCustomer)

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil, authCookie(t, user.ID))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	me := body["user"].(map[string]interface{})
	assert.Equal(t, "Ann", me["name"])
	assert.Equal(t, "ann@x.com", me["email"])
	assert.Equal(t, "customer", me["role"])
	assert.Equal(t, true, me["is_active"])

	// No session cookie at all
	w = doJSON(t, r, http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionResolutionFailures(t *testing.T) {
	r, _ := setupTest(t)
	user := createUser(t, "Ann", "ann@x.com", "pw123", models.RoleCustomer)

	t.Run("garbage token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/auth/me", nil,
			&http.Cookie{Name: middleware.CookieName, Value: "not-a-token"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := middleware.Claims{
			UserID: user.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
		require.NoError(t, err)
		w := doJSON(t, r, http.MethodGet, "/auth/me", nil,
			&http.Cookie{Name: middleware.CookieName, Value: token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deactivated account", func(t *testing.T) {
		ck := authCookie(t, user.ID)
		require.NoError(t, config.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
		w := doJSON(t, r, http.MethodGet, "/auth/me", nil, ck)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
