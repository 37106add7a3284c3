package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInput runs the struct tags of an input value and wraps the
// validator error so callers can still errors.As it into
// validator.ValidationErrors.
func ValidateInput(in interface{}) error {
	if err := Validate.Struct(in); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

type StoresRepo interface {
	AddStore(in NewStoreInput, ownerID string) (Store, error)
	UpdateStoreStatus(storeID string, isOpen bool) bool
	GetStores(menuFilters ...string) []Store
	GetStoreByID(id string) (Store, bool)
	GetStoresByOwner(ownerID string) []Store
	IncrementStoreViewCount(storeID string) bool
	UpdateStoreLocation(storeID string, lat, lng float64, address string) bool
	UpdateStoreSchedule(storeID string, schedule WeeklySchedule) bool
	GetAnalyticsByStore(storeID string) []LocationAnalytics
}

type CommunityRepo interface {
	AddPost(in NewPostInput) (CommunityPost, error)
	GetPosts() []CommunityPost
	GetPostByID(id string) (CommunityPost, bool)
	LikePost(postID string) bool
	AddCommentToPost(postID string, in NewCommentInput) (Comment, bool, error)
}

type ReservationsRepo interface {
	AddReservation(in NewReservationInput) (Reservation, error)
	GetReservationByID(id string) (Reservation, bool)
	GetReservationsByStore(storeID string) []Reservation
	GetReservationsByCustomer(customerID string) []Reservation
	UpdateReservationStatus(id string, status ReservationStatus) (Reservation, ReservationStatus, bool)
}

type ReviewsRepo interface {
	AddReview(in NewReviewInput) (Review, error)
	GetReviewsByStore(storeID string) []Review
}

type NotificationsRepo interface {
	AddNotification(in NewNotificationInput) (Notification, error)
	GetNotificationByID(id string) (Notification, bool)
	GetNotifications(userID string) []Notification
	UnreadCount(userID string) int
	MarkNotificationAsRead(id string) bool
	MarkAllNotificationsAsRead(userID string) int
}

type ChatRepo interface {
	AddChatMessage(in NewChatMessageInput) (ChatMessage, error)
	GetChatMessages(storeID string) []ChatMessage
}

type UsersRepo interface {
	RegisterUser(user User) User
	GetUser(id string) (User, bool)
	GetUsersByRole(role UserRole) []User
}
