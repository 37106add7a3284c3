package services

import (
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
)

type NotificationService struct {
	notifications models.NotificationsRepo
	users         models.UsersRepo
	logger        *slog.Logger
}

func NewNotificationService(notifications models.NotificationsRepo, users models.UsersRepo, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		logger:        logger,
	}
}

func (ns *NotificationService) Notify(in models.NewNotificationInput) (models.Notification, error) {
	n, err := ns.notifications.AddNotification(in)
	if err != nil {
		return models.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

// NotifyRole sends one notification to every known user with role, skipping
// the user in except. Failures are logged and do not stop the fan-out.
func (ns *NotificationService) NotifyRole(role models.UserRole, except string, in models.NewNotificationInput) int {
	sent := 0
	for _, u := range ns.users.GetUsersByRole(role) {
		if u.ID == except {
			continue
		}
		in.UserID = u.ID
		if _, err := ns.Notify(in); err != nil {
			ns.logger.Warn("notification fan-out failed", "user_id", u.ID, "type", in.Type, "error", err)
			continue
		}
		sent++
	}
	return sent
}

func (ns *NotificationService) List(claims *helpers.SessionClaims) ([]models.Notification, int, error) {
	if claims.IsGuest() {
		return nil, 0, ErrGuest
	}
	uid := claims.UserID()
	return ns.notifications.GetNotifications(uid), ns.notifications.UnreadCount(uid), nil
}

func (ns *NotificationService) MarkRead(claims *helpers.SessionClaims, id string) (models.Notification, error) {
	if claims.IsGuest() {
		return models.Notification{}, ErrGuest
	}
	n, ok := ns.notifications.GetNotificationByID(id)
	if !ok {
		return models.Notification{}, fmt.Errorf("notification %s: %w", id, ErrNotFound)
	}
	if !claims.IsOwner(n.UserID) {
		return models.Notification{}, fmt.Errorf("notification %s belongs to another user: %w", id, ErrForbidden)
	}
	ns.notifications.MarkNotificationAsRead(id)
	n.IsRead = true
	return n, nil
}

func (ns *NotificationService) MarkAllRead(claims *helpers.SessionClaims) (int, error) {
	if claims.IsGuest() {
		return 0, ErrGuest
	}
	return ns.notifications.MarkAllNotificationsAsRead(claims.UserID()), nil
}
