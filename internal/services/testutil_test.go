package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The DSN is namespaced by
// test name so parallel tests don't share state.
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
