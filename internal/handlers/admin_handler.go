package handlers

import (
	"errors"
	"strconv"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler exposes the moderation surface: user lookup by email,
// subscription toggling, and todo mutations without ownership checks. Role
// enforcement lives in the AdminRequired middleware.
type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Lookup(c *fiber.Ctx) error {
	email := c.Query("email")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	user, todos, totalPages, err := h.service.LookupByEmail(email, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to look up user"))
	}

	resp := dto.AdminLookupResponse{
		TotalPages:  totalPages,
		CurrentPage: page,
	}
	if user != nil {
		resp.User = &dto.AdminUser{User: *user, Todos: todos}
	}
	return c.JSON(resp)
}

func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var req dto.AdminUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid request body"))
	}

	switch {
	case req.IsSubscribed != nil:
		if req.Email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Err(dto.CodeValidation, "Email is required"))
		}
		if err := h.service.SetSubscription(req.Email, *req.IsSubscribed); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(
					dto.Err(dto.CodeNotFound, err.Error()))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(
				dto.Err(dto.CodeInternal, "Failed to update subscription"))
		}

	case req.TodoID != "":
		todoID, err := uuid.Parse(req.TodoID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Err(dto.CodeValidation, "Invalid todo ID"))
		}
		if _, err := h.service.UpdateTodo(todoID, req.TodoCompleted, req.TodoTitle); err != nil {
			switch {
			case errors.Is(err, services.ErrTodoNotFound):
				return c.Status(fiber.StatusNotFound).JSON(
					dto.Err(dto.CodeNotFound, err.Error()))
			case errors.Is(err, services.ErrTitleRequired):
				return c.Status(fiber.StatusBadRequest).JSON(
					dto.Err(dto.CodeValidation, err.Error()))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(
				dto.Err(dto.CodeInternal, "Failed to update todo"))
		}

	default:
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid request"))
	}

	return c.JSON(dto.MessageResponse{Message: "Updated successfully"})
}

func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	var req dto.AdminDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid request body"))
	}

	if req.TodoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Todo ID is required"))
	}

	todoID, err := uuid.Parse(req.TodoID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid todo ID"))
	}

	if err := h.service.DeleteTodo(todoID); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Err(dto.CodeNotFound, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to delete todo"))
	}

	return c.JSON(dto.MessageResponse{Message: "Todo deleted successfully"})
}
