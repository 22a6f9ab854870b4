package services

import (
	"errors"
	"log/slog"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"
	"gorm.io/gorm"
)

var ErrNoPrimaryEmail = errors.New("no primary email address")

// UserSyncService mirrors identity-provider lifecycle events into the local
// users table.
type UserSyncService struct {
	db *gorm.DB
}

func NewUserSyncService(db *gorm.DB) *UserSyncService {
	return &UserSyncService{db: db}
}

// HandleEvent dispatches a verified webhook event. Event types without a
// local mirror are acknowledged and ignored.
func (s *UserSyncService) HandleEvent(event *dto.IdentityEvent) error {
	switch event.Type {
	case "user.created":
		return s.handleUserCreated(&event.Data)
	default:
		return nil
	}
}

func (s *UserSyncService) handleUserCreated(data *dto.IdentityEventData) error {
	var primary *dto.EmailAddress
	for i := range data.EmailAddresses {
		if data.EmailAddresses[i].ID == data.PrimaryEmailAddressID {
			primary = &data.EmailAddresses[i]
			break
		}
	}
	if primary == nil {
		return ErrNoPrimaryEmail
	}

	// Webhook deliveries can replay; an already-mirrored user is success,
	// not an error.
	var existing models.User
	if err := s.db.First(&existing, "id = ?", data.ID).Error; err == nil {
		slog.Info("webhook replay ignored", "user_id", data.ID)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := models.User{
		ID:           data.ID,
		Email:        primary.EmailAddress,
		IsSubscribed: false,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	slog.Info("user mirrored from identity provider", "user_id", user.ID)
	return nil
}
