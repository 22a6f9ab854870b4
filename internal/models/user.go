package models

import "time"

// User mirrors the identity provider's user record. Rows are created only by
// the identity-sync webhook, never directly by application code. The primary
// key is the provider-issued identifier.
type User struct {
	ID               string     `gorm:"primaryKey;size:64" json:"id"`
	Email            string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	IsSubscribed     bool       `gorm:"not null;default:false" json:"isSubscribed"`
	SubscriptionEnds *time.Time `json:"subscriptionEnds"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
