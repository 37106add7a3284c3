package models

import (
	"time"
)

type ChatSender string

const (
	SenderCustomer ChatSender = "customer"
	SenderStore    ChatSender = "store"
)

type ChatMessage struct {
	ID         string     `json:"id"`
	StoreID    string     `json:"store_id"`
	Sender     ChatSender `json:"sender"`
	SenderID   string     `json:"sender_id"`
	SenderName string     `json:"sender_name"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}

type NewChatMessageInput struct {
	StoreID    string     `json:"store_id" validate:"required"`
	Sender     ChatSender `json:"sender" validate:"required,oneof=customer store"`
	SenderID   string     `json:"sender_id" validate:"required"`
	SenderName string     `json:"sender_name"`
	Content    string     `json:"content" validate:"required,max=1000"`
}
