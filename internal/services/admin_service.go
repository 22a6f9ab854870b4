package services

import (
	"errors"
	"strings"
	"time"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/auth"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService mirrors the todo and subscription operations but targets an
// arbitrary user by email and skips ownership checks on todo mutations.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// LookupByEmail resolves a user by email and returns one page of their todos
// with the same pagination rules as the owner-scoped listing. An unknown or
// empty email yields a nil user and zero total pages, not an error.
func (s *AdminService) LookupByEmail(email string, page int) (*models.User, []models.Todo, int, error) {
	if page < 1 {
		page = 1
	}
	if email == "" {
		return nil, nil, 0, nil
	}

	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, nil
		}
		return nil, nil, 0, err
	}

	var total int64
	err := s.db.Model(&models.Todo{}).Scopes(auth.OwnedBy(user.ID)).Count(&total).Error
	if err != nil {
		return nil, nil, 0, err
	}

	todos := make([]models.Todo, 0, ItemsPerPage)
	err = s.db.
		Scopes(auth.OwnedBy(user.ID), auth.Page(page, ItemsPerPage)).
		Order("created_at DESC, id").
		Find(&todos).Error
	if err != nil {
		return nil, nil, 0, err
	}

	totalPages := int((total + ItemsPerPage - 1) / ItemsPerPage)
	return &user, todos, totalPages, nil
}

// SetSubscription flips the subscription flag for the user with the given
// email. Turning it on extends one month from now, same as the self-serve
// path; turning it off nulls the end date immediately.
func (s *AdminService) SetSubscription(email string, subscribed bool) error {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"is_subscribed":     subscribed,
		"subscription_ends": nil,
	}
	if subscribed {
		updates["subscription_ends"] = time.Now().AddDate(0, 1, 0)
	}
	return s.db.Model(&user).Updates(updates).Error
}

// UpdateTodo applies a partial update to any user's todo. No ownership check:
// the admin role was already verified at the route boundary.
func (s *AdminService) UpdateTodo(todoID uuid.UUID, completed *bool, title *string) (*models.Todo, error) {
	var todo models.Todo
	if err := s.db.First(&todo, "id = ?", todoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, ErrTitleRequired
		}
		todo.Title = trimmed
	}
	if completed != nil {
		todo.Completed = *completed
	}

	if err := s.db.Save(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *AdminService) DeleteTodo(todoID uuid.UUID) error {
	var todo models.Todo
	if err := s.db.First(&todo, "id = ?", todoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return s.db.Delete(&todo).Error
}
