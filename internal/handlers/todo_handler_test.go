package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodosRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/todos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, dto.CodeUnauthorized, body.Code)
}

func TestTodoLifecycle(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "user_1", "alice@example.com", false)
	token := signToken(t, "user_1")

	// Create.
	resp := doRequest(t, app, http.MethodPost, "/todos", token, dto.CreateTodoRequest{Title: "Buy milk"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Todo
	decodeBody(t, resp, &created)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)
	require.NotEqual(t, uuid.Nil, created.ID)

	// It shows up in the list.
	resp = doRequest(t, app, http.MethodGet, "/todos", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.TodoListResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Todos, 1)
	assert.Equal(t, created.ID, list.Todos[0].ID)
	assert.Equal(t, 1, list.TotalPages)
	assert.Equal(t, 1, list.CurrentPage)

	// Mark it done.
	done := true
	resp = doRequest(t, app, http.MethodPut, "/todos/"+created.ID.String(), token, dto.UpdateTodoRequest{Completed: &done})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Todo
	decodeBody(t, resp, &updated)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)

	resp = doRequest(t, app, http.MethodGet, "/todos", token, nil)
	decodeBody(t, resp, &list)
	require.Len(t, list.Todos, 1)
	assert.True(t, list.Todos[0].Completed)

	// Delete, then the list is empty again.
	resp = doRequest(t, app, http.MethodDelete, "/todos/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/todos", token, nil)
	decodeBody(t, resp, &list)
	assert.Empty(t, list.Todos)
	assert.Equal(t, 0, list.TotalPages)
}

func TestTodoCreateQuotaOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "user_1", "alice@example.com", false)
	token := signToken(t, "user_1")

	for i := 0; i < 3; i++ {
		resp := doRequest(t, app, http.MethodPost, "/todos", token, dto.CreateTodoRequest{Title: "todo"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doRequest(t, app, http.MethodPost, "/todos", token, dto.CreateTodoRequest{Title: "one too many"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, dto.CodeQuotaExceeded, body.Code)
}

func TestTodoCreateValidationOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "user_1", "alice@example.com", false)
	token := signToken(t, "user_1")

	resp := doRequest(t, app, http.MethodPost, "/todos", token, dto.CreateTodoRequest{Title: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, dto.CodeValidation, body.Code)
}

func TestTodoCreateUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)
	token := signToken(t, "user_ghost")

	resp := doRequest(t, app, http.MethodPost, "/todos", token, dto.CreateTodoRequest{Title: "orphan"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTodoAccessControlOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "user_1", "alice@example.com", false)
	seedUser(t, db, "user_2", "bob@example.com", false)
	todo := seedTodo(t, db, "user_1", "private", time.Now())
	bobToken := signToken(t, "user_2")

	done := true
	resp := doRequest(t, app, http.MethodPut, "/todos/"+todo.ID.String(), bobToken, dto.UpdateTodoRequest{Completed: &done})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, dto.CodeForbidden, body.Code)

	resp = doRequest(t, app, http.MethodDelete, "/todos/"+todo.ID.String(), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Still there for its owner.
	var count int64
	require.NoError(t, db.Model(&models.Todo{}).Where("id = ?", todo.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTodoUnknownIDOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "user_1", "alice@example.com", false)
	token := signToken(t, "user_1")

	resp := doRequest(t, app, http.MethodDelete, "/todos/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPut, "/todos/not-a-uuid", token, dto.UpdateTodoRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTodoListPaginationOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "user_1", "alice@example.com", true)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		seedTodo(t, db, "user_1", "item", base.Add(time.Duration(i)*time.Minute))
	}
	token := signToken(t, "user_1")

	resp := doRequest(t, app, http.MethodGet, "/todos?page=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.TodoListResponse
	decodeBody(t, resp, &list)
	assert.Len(t, list.Todos, 2)
	assert.Equal(t, 2, list.TotalPages)
	assert.Equal(t, 2, list.CurrentPage)

	// Past the end the page is echoed back, not clamped.
	resp = doRequest(t, app, http.MethodGet, "/todos?page=9", token, nil)
	decodeBody(t, resp, &list)
	assert.Empty(t, list.Todos)
	assert.Equal(t, 9, list.CurrentPage)
}

func TestTodoListSearchOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "user_1", "alice@example.com", true)
	now := time.Now()
	seedTodo(t, db, "user_1", "Buy Milk", now)
	seedTodo(t, db, "user_1", "walk the dog", now.Add(time.Minute))
	token := signToken(t, "user_1")

	resp := doRequest(t, app, http.MethodGet, "/todos?search=milk", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.TodoListResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Todos, 1)
	assert.Equal(t, "Buy Milk", list.Todos[0].Title)
}
