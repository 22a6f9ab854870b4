package handlers

import (
	"errors"
	"strconv"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/auth"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TodoHandler struct {
	service *services.TodoService
}

func NewTodoHandler(service *services.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

func (h *TodoHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Err(dto.CodeUnauthorized, "Unauthorized"))
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	search := c.Query("search")

	result, err := h.service.List(userID, page, search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to fetch todos"))
	}

	return c.JSON(dto.TodoListResponse{
		Todos:       result.Todos,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	})
}

func (h *TodoHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Err(dto.CodeUnauthorized, "Unauthorized"))
	}

	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid request body"))
	}

	todo, err := h.service.Create(userID, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuotaExceeded):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Err(dto.CodeQuotaExceeded, err.Error()))
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Err(dto.CodeNotFound, err.Error()))
		case errors.Is(err, services.ErrTitleRequired):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Err(dto.CodeValidation, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to create todo"))
	}

	return c.Status(fiber.StatusCreated).JSON(todo)
}

func (h *TodoHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Err(dto.CodeUnauthorized, "Unauthorized"))
	}

	todoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid todo ID"))
	}

	var req dto.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid request body"))
	}

	todo, err := h.service.Update(userID, todoID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Err(dto.CodeNotFound, err.Error()))
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Err(dto.CodeForbidden, err.Error()))
		case errors.Is(err, services.ErrTitleRequired):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Err(dto.CodeValidation, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to update todo"))
	}

	return c.JSON(todo)
}

func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Err(dto.CodeUnauthorized, "Unauthorized"))
	}

	todoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid todo ID"))
	}

	if err := h.service.Delete(userID, todoID); err != nil {
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Err(dto.CodeNotFound, err.Error()))
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Err(dto.CodeForbidden, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to delete todo"))
	}

	return c.JSON(dto.MessageResponse{Message: "Todo deleted successfully"})
}
