package store

import (
	"github.com/joshua-takyi/streetbite/internal/models"
)

func (s *StateStore) AddNotification(in models.NewNotificationInput) (models.Notification, error) {
	if err := models.ValidateInput(in); err != nil {
		return models.Notification{}, err
	}

	s.mu.Lock()
	n := &models.Notification{
		ID:        s.newID(),
		UserID:    in.UserID,
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		IsRead:    false,
		CreatedAt: s.now(),
		StoreID:   in.StoreID,
	}
	s.notifications = append([]*models.Notification{n}, s.notifications...)
	out := *n
	s.mu.Unlock()

	s.notify()
	return out, nil
}

func (s *StateStore) GetNotificationByID(id string) (models.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications {
		if n.ID == id {
			return *n, true
		}
	}
	return models.Notification{}, false
}

// GetNotifications returns the user's notifications, newest first.
func (s *StateStore) GetNotifications(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Notification{}
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out
}

func (s *StateStore) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count
}

// MarkNotificationAsRead never turns a read notification back to unread.
func (s *StateStore) MarkNotificationAsRead(id string) bool {
	s.mu.Lock()
	var found *models.Notification
	for _, n := range s.notifications {
		if n.ID == id {
			found = n
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return false
	}
	found.IsRead = true
	s.mu.Unlock()

	s.notify()
	return true
}

// MarkAllNotificationsAsRead flips every unread notification of userID and
// reports how many changed. Other users are untouched.
func (s *StateStore) MarkAllNotificationsAsRead(userID string) int {
	s.mu.Lock()
	changed := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			changed++
		}
	}
	s.mu.Unlock()

	s.notify()
	return changed
}
