package store

import (
	"sort"

	"github.com/joshua-takyi/streetbite/internal/models"
)

// RegisterUser records a locally selected identity. Registering an existing
// id refreshes its role and name but keeps the original creation time.
// Users are bookkeeping only and do not notify subscribers.
func (s *StateStore) RegisterUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.users[user.ID]; ok {
		user.CreatedAt = prev.CreatedAt
	} else if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	s.users[user.ID] = user
	return user
}

func (s *StateStore) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

// GetUsersByRole returns users ordered by registration time, then id.
func (s *StateStore) GetUsersByRole(role models.UserRole) []models.User {
	s.mu.RLock()
	out := []models.User{}
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
