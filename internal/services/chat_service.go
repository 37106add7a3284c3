package services

import (
	"fmt"

	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
)

type ChatService struct {
	chat   models.ChatRepo
	stores models.StoresRepo
}

func NewChatService(chat models.ChatRepo, stores models.StoresRepo) *ChatService {
	return &ChatService{
		chat:   chat,
		stores: stores,
	}
}

// Send posts into a store's conversation. The store's owner speaks as the
// store; everyone else speaks as a customer.
func (cs *ChatService) Send(claims *helpers.SessionClaims, storeID, content string) (models.ChatMessage, error) {
	if claims.IsGuest() {
		return models.ChatMessage{}, ErrGuest
	}
	st, ok := cs.stores.GetStoreByID(storeID)
	if !ok {
		return models.ChatMessage{}, fmt.Errorf("store %s: %w", storeID, ErrNotFound)
	}

	in := models.NewChatMessageInput{
		StoreID:    st.ID,
		Sender:     models.SenderCustomer,
		SenderID:   claims.UserID(),
		SenderName: claims.DisplayName(),
		Content:    content,
	}
	if claims.IsStoreOwner() && claims.IsOwner(st.OwnerID) {
		in.Sender = models.SenderStore
		in.SenderName = st.Name
	}
	return cs.chat.AddChatMessage(in)
}

func (cs *ChatService) History(claims *helpers.SessionClaims, storeID string) ([]models.ChatMessage, error) {
	if claims.IsGuest() {
		return nil, ErrGuest
	}
	if _, ok := cs.stores.GetStoreByID(storeID); !ok {
		return nil, fmt.Errorf("store %s: %w", storeID, ErrNotFound)
	}
	return cs.chat.GetChatMessages(storeID), nil
}
