package services

import (
	"errors"
	"time"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/models"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

type SubscriptionStatus struct {
	IsSubscribed     bool
	SubscriptionEnds *time.Time
}

// Status reports the caller's subscription state. A subscription whose end
// date has passed is corrected in place before reporting; this read path is
// the only expiry mechanism, there is no background sweep.
func (s *SubscriptionService) Status(userID string) (*SubscriptionStatus, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.SubscriptionEnds != nil && user.SubscriptionEnds.Before(time.Now()) {
		err := s.db.Model(&user).Updates(map[string]interface{}{
			"is_subscribed":     false,
			"subscription_ends": nil,
		}).Error
		if err != nil {
			return nil, err
		}
		return &SubscriptionStatus{IsSubscribed: false}, nil
	}

	return &SubscriptionStatus{
		IsSubscribed:     user.IsSubscribed,
		SubscriptionEnds: user.SubscriptionEnds,
	}, nil
}

// Subscribe activates or extends the caller's subscription for one month.
// Payment capture is a stub: a real integration must gate this state
// transition, not become part of it.
func (s *SubscriptionService) Subscribe(userID string) (*time.Time, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ends := time.Now().AddDate(0, 1, 0)
	err := s.db.Model(&user).Updates(map[string]interface{}{
		"is_subscribed":     true,
		"subscription_ends": ends,
	}).Error
	if err != nil {
		return nil, err
	}
	return &ends, nil
}
