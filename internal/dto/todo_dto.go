package dto

import "github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"

type CreateTodoRequest struct {
	Title string `json:"title"`
}

// UpdateTodoRequest carries partial-update semantics: nil fields are left
// unchanged.
type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type TodoListResponse struct {
	Todos       []models.Todo `json:"todos"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
}
