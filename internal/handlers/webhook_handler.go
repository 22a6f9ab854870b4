package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"
)

// WebhookHandler receives signed user-lifecycle events from the identity
// provider and mirrors them through the sync service.
type WebhookHandler struct {
	syncService *services.UserSyncService
	verifier    *svix.Webhook
}

func NewWebhookHandler(syncService *services.UserSyncService, secret string) (*WebhookHandler, error) {
	verifier, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, err
	}
	return &WebhookHandler{
		syncService: syncService,
		verifier:    verifier,
	}, nil
}

func (h *WebhookHandler) HandleRegister(c *fiber.Ctx) error {
	id := c.Get("svix-id")
	timestamp := c.Get("svix-timestamp")
	signature := c.Get("svix-signature")
	if id == "" || timestamp == "" || signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeVerificationFailed, "Missing svix headers"))
	}

	headers := http.Header{}
	headers.Set("svix-id", id)
	headers.Set("svix-timestamp", timestamp)
	headers.Set("svix-signature", signature)

	if err := h.verifier.Verify(c.Body(), headers); err != nil {
		slog.Error("webhook verification failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeVerificationFailed, "Webhook verification failed"))
	}

	var event dto.IdentityEvent
	if err := json.Unmarshal(c.Body(), &event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.CodeValidation, "Invalid webhook payload"))
	}

	if err := h.syncService.HandleEvent(&event); err != nil {
		if errors.Is(err, services.ErrNoPrimaryEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Err(dto.CodeValidation, "No primary email"))
		}
		slog.Error("webhook processing failed", "event_type", event.Type, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Err(dto.CodeInternal, "Failed to process webhook event"))
	}

	slog.Info("webhook processed", "event_type", event.Type)
	return c.JSON(fiber.Map{"received": true})
}
