package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Yogeshjindal/RestaurantApplication/config"
	"github.com/Yogeshjindal/RestaurantApplication/middleware"
	"github.com/Yogeshjindal/RestaurantApplication/models"
	"github.com/Yogeshjindal/RestaurantApplication/notify"
	"github.com/Yogeshjindal/RestaurantApplication/realtime"
	"github.com/Yogeshjindal/RestaurantApplication/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sentMail is one email captured by the test sink
type sentMail struct {
	To      string
	Subject string
	Body    string
}

// sentEvent is one broadcast captured by the test sink
type sentEvent struct {
	Event string
	Data  interface{}
}

// capture is a Mailer and Broadcaster recording deliveries for assertions
type capture struct {
	mails   chan sentMail
	events  chan sentEvent
	mailErr error
}

func newCapture() *capture {
	return &capture{
		mails:  make(chan sentMail, 16),
		events: make(chan sentEvent, 16),
	}
}

func (cp *capture) Send(to, subject, body string) error {
	cp.mails <- sentMail{To: to, Subject: subject, Body: body}
	return cp.mailErr
}

func (cp *capture) Broadcast(event string, data interface{}) {
	cp.events <- sentEvent{Event: event, Data: data}
}

func (cp *capture) waitEvent(t *testing.T) sentEvent {
	t.Helper()
	select {
	case ev := <-cp.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a broadcast event")
		return sentEvent{}
	}
}

func (cp *capture) waitMail(t *testing.T) sentMail {
	t.Helper()
	select {
	case m := <-cp.mails:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an email")
		return sentMail{}
	}
}

// setupTest wires an in-memory database and the full route surface with a
// capturing notification sink.
func setupTest(t *testing.T) (*gin.Engine, *capture) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	cp := newCapture()
	hub := realtime.NewHub("http://localhost:5173")
	notifier := notify.NewDispatcher(cp, cp, 1)
	t.Cleanup(notifier.Shutdown)

	r := gin.New()
	routes.SetupRoutes(r, notifier, hub)
	return r, cp
}

// createUser inserts a user with a bcrypt-hashed password and returns it
func createUser(t *testing.T, name, email, password string, role models.UserRole) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        "1234567890",
		IsActive:     true,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

// authCookie builds a valid session cookie for a user
func authCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()
	token, err := middleware.GenerateToken(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.CookieName, Value: token}
}

// doJSON performs a request with an optional JSON body and cookies
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// createMenuItem inserts a catalog entry directly
func createMenuItem(t *testing.T, name string, price float64, available bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Description: "test item",
		Price:       price,
		Category:    models.CategoryMainCourse,
		IsAvailable: available,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}
