package models

import (
	"time"
)

type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommunityPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorRole UserRole  `json:"author_role"`
	StoreID    string    `json:"store_id,omitempty"`   // optional link to the store the post is about
	StoreName  string    `json:"store_name,omitempty"` // denormalised for display
	CreatedAt  time.Time `json:"created_at"`
	Likes      int       `json:"likes"`
	Comments   []Comment `json:"comments"`
}

func (p CommunityPost) Clone() CommunityPost {
	out := p
	out.Comments = append([]Comment{}, p.Comments...)
	return out
}

// NewPostInput rejects guest authors: only customers and store owners post.
type NewPostInput struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Content    string   `json:"content" validate:"required,max=5000"`
	AuthorID   string   `json:"author_id" validate:"required"`
	AuthorName string   `json:"author_name" validate:"required"`
	AuthorRole UserRole `json:"author_role" validate:"required,oneof=customer store"`
	StoreID    string   `json:"store_id,omitempty"`
	StoreName  string   `json:"store_name,omitempty"`
}

type NewCommentInput struct {
	Content    string `json:"content" validate:"required,max=2000"`
	AuthorID   string `json:"author_id" validate:"required"`
	AuthorName string `json:"author_name" validate:"required"`
}
