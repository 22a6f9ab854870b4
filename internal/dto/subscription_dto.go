package dto

import "time"

type SubscriptionStatusResponse struct {
	IsSubscribed     bool       `json:"isSubscribed"`
	SubscriptionEnds *time.Time `json:"subscriptionEnds"`
}

type SubscribeResponse struct {
	Message          string     `json:"message"`
	SubscriptionEnds *time.Time `json:"subscriptionEnds"`
}
