package store

import (
	"github.com/joshua-takyi/streetbite/internal/models"
)

// AddPost puts the new post at the front so GetPosts stays newest first.
func (s *StateStore) AddPost(in models.NewPostInput) (models.CommunityPost, error) {
	if err := models.ValidateInput(in); err != nil {
		return models.CommunityPost{}, err
	}

	s.mu.Lock()
	p := &models.CommunityPost{
		ID:         s.newID(),
		Title:      in.Title,
		Content:    in.Content,
		AuthorID:   in.AuthorID,
		AuthorName: in.AuthorName,
		AuthorRole: in.AuthorRole,
		StoreID:    in.StoreID,
		StoreName:  in.StoreName,
		CreatedAt:  s.now(),
		Likes:      0,
		Comments:   []models.Comment{},
	}
	s.posts = append([]*models.CommunityPost{p}, s.posts...)
	out := p.Clone()
	s.mu.Unlock()

	s.notify()
	return out, nil
}

func (s *StateStore) GetPosts() []models.CommunityPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CommunityPost, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p.Clone())
	}
	return out
}

func (s *StateStore) GetPostByID(id string) (models.CommunityPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findPost(id)
	if p == nil {
		return models.CommunityPost{}, false
	}
	return p.Clone(), true
}

// LikePost adds one like per call. Likes are not tracked per user, so the
// same user can like a post any number of times.
func (s *StateStore) LikePost(postID string) bool {
	s.mu.Lock()
	p := s.findPost(postID)
	if p == nil {
		s.mu.Unlock()
		return false
	}
	p.Likes++
	s.mu.Unlock()

	s.notify()
	return true
}

// AddCommentToPost appends a comment. The bool reports whether the post
// exists; an unknown post is a no-op.
func (s *StateStore) AddCommentToPost(postID string, in models.NewCommentInput) (models.Comment, bool, error) {
	if err := models.ValidateInput(in); err != nil {
		return models.Comment{}, false, err
	}

	s.mu.Lock()
	p := s.findPost(postID)
	if p == nil {
		s.mu.Unlock()
		return models.Comment{}, false, nil
	}
	c := models.Comment{
		ID:         s.newID(),
		Content:    in.Content,
		AuthorID:   in.AuthorID,
		AuthorName: in.AuthorName,
		CreatedAt:  s.now(),
	}
	p.Comments = append(p.Comments, c)
	s.mu.Unlock()

	s.notify()
	return c, true, nil
}

func (s *StateStore) findPost(id string) *models.CommunityPost {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}
