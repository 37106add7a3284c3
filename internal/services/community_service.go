package services

import (
	"fmt"
	"strings"

	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
)

type CommunityService struct {
	posts  models.CommunityRepo
	stores models.StoresRepo
}

func NewCommunityService(posts models.CommunityRepo, stores models.StoresRepo) *CommunityService {
	return &CommunityService{
		posts:  posts,
		stores: stores,
	}
}

// CreatePost publishes a post as the caller. A linked store must exist; its
// name is copied onto the post.
func (cs *CommunityService) CreatePost(claims *helpers.SessionClaims, title, content, storeID string) (models.CommunityPost, error) {
	if claims.IsGuest() {
		return models.CommunityPost{}, ErrGuest
	}

	in := models.NewPostInput{
		Title:      strings.TrimSpace(title),
		Content:    strings.TrimSpace(content),
		AuthorID:   claims.UserID(),
		AuthorName: claims.DisplayName(),
		AuthorRole: claims.GetSafeRole(),
	}
	if storeID = strings.TrimSpace(storeID); storeID != "" {
		st, ok := cs.stores.GetStoreByID(storeID)
		if !ok {
			return models.CommunityPost{}, fmt.Errorf("linked store %s: %w", storeID, ErrNotFound)
		}
		in.StoreID = st.ID
		in.StoreName = st.Name
	}
	return cs.posts.AddPost(in)
}

func (cs *CommunityService) ListPosts() []models.CommunityPost {
	return cs.posts.GetPosts()
}

func (cs *CommunityService) GetPost(id string) (models.CommunityPost, error) {
	p, ok := cs.posts.GetPostByID(id)
	if !ok {
		return models.CommunityPost{}, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// LikePost adds a like. The same user may like a post repeatedly.
func (cs *CommunityService) LikePost(claims *helpers.SessionClaims, id string) (models.CommunityPost, error) {
	if claims.IsGuest() {
		return models.CommunityPost{}, ErrGuest
	}
	if !cs.posts.LikePost(id) {
		return models.CommunityPost{}, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return cs.GetPost(id)
}

func (cs *CommunityService) AddComment(claims *helpers.SessionClaims, postID, content string) (models.Comment, error) {
	if claims.IsGuest() {
		return models.Comment{}, ErrGuest
	}
	c, ok, err := cs.posts.AddCommentToPost(postID, models.NewCommentInput{
		Content:    strings.TrimSpace(content),
		AuthorID:   claims.UserID(),
		AuthorName: claims.DisplayName(),
	})
	if err != nil {
		return models.Comment{}, err
	}
	if !ok {
		return models.Comment{}, fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}
	return c, nil
}
