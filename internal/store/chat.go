package store

import (
	"strings"

	"github.com/joshua-takyi/streetbite/internal/models"
)

func (s *StateStore) AddChatMessage(in models.NewChatMessageInput) (models.ChatMessage, error) {
	in.Content = strings.TrimSpace(in.Content)
	if err := models.ValidateInput(in); err != nil {
		return models.ChatMessage{}, err
	}

	s.mu.Lock()
	m := &models.ChatMessage{
		ID:         s.newID(),
		StoreID:    in.StoreID,
		Sender:     in.Sender,
		SenderID:   in.SenderID,
		SenderName: in.SenderName,
		Content:    in.Content,
		CreatedAt:  s.now(),
	}
	s.messages = append(s.messages, m)
	out := *m
	s.mu.Unlock()

	s.notify()
	return out, nil
}

// GetChatMessages returns the store's conversation, oldest first.
func (s *StateStore) GetChatMessages(storeID string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ChatMessage{}
	for _, m := range s.messages {
		if m.StoreID == storeID {
			out = append(out, *m)
		}
	}
	return out
}
