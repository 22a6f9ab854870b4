package handlers

import (
	"errors"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/auth"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	service *services.SubscriptionService
}

func NewSubscriptionHandler(service *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

func (h *SubscriptionHandler) Status(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Err(dto.CodeUnauthorized, "Unauthorized"))
	}

	status, err := h.service.Status(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Err(dto.CodeNotFound, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to fetch subscription"))
	}

	return c.JSON(dto.SubscriptionStatusResponse{
		IsSubscribed:     status.IsSubscribed,
		SubscriptionEnds: status.SubscriptionEnds,
	})
}

func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Err(dto.CodeUnauthorized, "Unauthorized"))
	}

	ends, err := h.service.Subscribe(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Err(dto.CodeNotFound, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to create subscription"))
	}

	return c.JSON(dto.SubscribeResponse{
		Message:          "Subscription created successfully",
		SubscriptionEnds: ends,
	})
}
