package services

import (
	"errors"
	"strings"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/auth"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// ItemsPerPage is the fixed page size for every todo listing.
	ItemsPerPage = 10

	// FreeTodoLimit caps non-subscribed accounts.
	FreeTodoLimit = 3
)

var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrNotOwner      = errors.New("you do not own this todo")
	ErrQuotaExceeded = errors.New("free users can only have 3 todos, please subscribe")
	ErrTitleRequired = errors.New("title is required")
	ErrUserNotFound  = errors.New("user not found")
)

type TodoService struct {
	db *gorm.DB
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{db: db}
}

// TodoPage is one page of todos plus the pagination echo. CurrentPage is the
// coerced page number as requested, never clamped to the valid range; an
// out-of-range page yields an empty Todos slice.
type TodoPage struct {
	Todos       []models.Todo
	CurrentPage int
	TotalPages  int
}

func (s *TodoService) List(userID string, page int, search string) (*TodoPage, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	err := s.db.Model(&models.Todo{}).
		Scopes(auth.OwnedBy(userID), auth.TitleMatch(search)).
		Count(&total).Error
	if err != nil {
		return nil, err
	}

	todos := make([]models.Todo, 0, ItemsPerPage)
	err = s.db.
		Scopes(auth.OwnedBy(userID), auth.TitleMatch(search), auth.Page(page, ItemsPerPage)).
		Order("created_at DESC, id").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}

	return &TodoPage{
		Todos:       todos,
		CurrentPage: page,
		TotalPages:  int((total + ItemsPerPage - 1) / ItemsPerPage),
	}, nil
}

func (s *TodoService) Create(userID, title string) (*models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// The quota count and the insert are not one transaction; concurrent
	// creates can race past the limit.
	var count int64
	err := s.db.Model(&models.Todo{}).Scopes(auth.OwnedBy(userID)).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if !user.IsSubscribed && count >= FreeTodoLimit {
		return nil, ErrQuotaExceeded
	}

	todo := models.Todo{
		Title:  title,
		UserID: userID,
	}
	if err := s.db.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update applies a partial update after the explicit ownership check. The id
// is caller-supplied and not scoped by owner in the lookup, so the comparison
// against the caller is mandatory.
func (s *TodoService) Update(userID string, todoID uuid.UUID, req *dto.UpdateTodoRequest) (*models.Todo, error) {
	todo, err := s.findOwned(userID, todoID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		todo.Title = title
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	if err := s.db.Save(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(userID string, todoID uuid.UUID) error {
	todo, err := s.findOwned(userID, todoID)
	if err != nil {
		return err
	}
	return s.db.Delete(todo).Error
}

func (s *TodoService) findOwned(userID string, todoID uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	if err := s.db.First(&todo, "id = ?", todoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	if todo.UserID != userID {
		return nil, ErrNotOwner
	}
	return &todo, nil
}
