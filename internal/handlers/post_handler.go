package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/middleware"
	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/joshua-takyi/streetbite/internal/services"
)

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	StoreID string `json:"store_id"`
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListPosts pages through the feed, newest first.
func ListPosts(s *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset, ok := pagination(c, 20)
		if !ok {
			return
		}
		posts := s.ListPosts()
		c.JSON(http.StatusOK, models.PaginatedResponse(page(posts, limit, offset), offset/limit+1, limit, len(posts)))
	}
}

func GetPost(s *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		p, err := s.GetPost(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(p, ""))
	}
}

func CreatePost(s *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		p, err := s.CreatePost(middleware.CurrentUser(c), req.Title, req.Content, req.StoreID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(p, "Post created successfully"))
	}
}

func LikePost(s *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		p, err := s.LikePost(middleware.CurrentUser(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(p, ""))
	}
}

func AddComment(s *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req commentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		comment, err := s.AddComment(middleware.CurrentUser(c), id, req.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(comment, "Comment added"))
	}
}
