package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/config"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/identity"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/middleware"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-jwt-secret"

var (
	testWebhookKey    = []byte("super-secret-signing-key-123456")
	testWebhookSecret = "whsec_" + base64.StdEncoding.EncodeToString(testWebhookKey)
)

// stubIdentity is an in-memory identity provider: every id resolves, and ids
// in the admin set carry the admin role.
type stubIdentity struct {
	admins map[string]bool
}

func (s *stubIdentity) GetUser(ctx context.Context, id string) (*identity.User, error) {
	user := &identity.User{ID: id}
	if s.admins[id] {
		user.PublicMetadata.Role = identity.RoleAdmin
	}
	return user, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Todo{}))
	return db
}

// newTestApp wires the full route table over an in-memory database. Users in
// admins get the provider-side admin role.
func newTestApp(t *testing.T, admins ...string) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: testJWTSecret}

	adminSet := make(map[string]bool, len(admins))
	for _, id := range admins {
		adminSet[id] = true
	}
	idClient := &stubIdentity{admins: adminSet}

	todoHandler := NewTodoHandler(services.NewTodoService(db))
	subscriptionHandler := NewSubscriptionHandler(services.NewSubscriptionService(db))
	adminHandler := NewAdminHandler(services.NewAdminService(db))
	webhookHandler, err := NewWebhookHandler(services.NewUserSyncService(db), testWebhookSecret)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(middleware.Protected(cfg))

	app.Post("/webhook/register", webhookHandler.HandleRegister)

	app.Get("/todos", todoHandler.List)
	app.Post("/todos", todoHandler.Create)
	app.Put("/todos/:id", todoHandler.Update)
	app.Delete("/todos/:id", todoHandler.Delete)

	app.Get("/subscription", subscriptionHandler.Status)
	app.Post("/subscription", subscriptionHandler.Subscribe)

	admin := app.Group("/admin", middleware.AdminRequired(idClient, cfg))
	admin.Get("/", adminHandler.Lookup)
	admin.Put("/", adminHandler.Update)
	admin.Delete("/", adminHandler.Delete)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, id, email string, subscribed bool) *models.User {
	t.Helper()
	user := &models.User{ID: id, Email: email, IsSubscribed: subscribed}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTodo(t *testing.T, db *gorm.DB, userID, title string, createdAt time.Time) *models.Todo {
	t.Helper()
	todo := &models.Todo{ID: uuid.New(), Title: title, UserID: userID, CreatedAt: createdAt}
	require.NoError(t, db.Create(todo).Error)
	return todo
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
