package dto

import "github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"

// AdminUser is a user record together with one page of their todos.
type AdminUser struct {
	models.User
	Todos []models.Todo `json:"todos"`
}

type AdminLookupResponse struct {
	User        *AdminUser `json:"user"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
}

// AdminUpdateRequest drives two independent branches: a subscription toggle
// (email + isSubscribed) and a todo patch (todoId + optional fields).
type AdminUpdateRequest struct {
	Email         string  `json:"email"`
	IsSubscribed  *bool   `json:"isSubscribed"`
	TodoID        string  `json:"todoId"`
	TodoCompleted *bool   `json:"todoCompleted"`
	TodoTitle     *string `json:"todoTitle"`
}

type AdminDeleteRequest struct {
	TodoID string `json:"todoId"`
}
