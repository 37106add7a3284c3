package models

import (
	"time"
)

type NotificationType string

const (
	NotificationNewStore             NotificationType = "new_store"
	NotificationStoreOpened          NotificationType = "store_opened"
	NotificationReservationConfirmed NotificationType = "reservation_confirmed"
	NotificationReviewReply          NotificationType = "review_reply"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"` // recipient
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
	StoreID   string           `json:"store_id,omitempty"`
}

type NewNotificationInput struct {
	UserID  string           `json:"user_id" validate:"required"`
	Type    NotificationType `json:"type" validate:"required,oneof=new_store store_opened reservation_confirmed review_reply"`
	Title   string           `json:"title" validate:"required,max=200"`
	Message string           `json:"message" validate:"max=1000"`
	StoreID string           `json:"store_id,omitempty"`
}
