package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/middleware"
	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/joshua-takyi/streetbite/internal/services"
)

type messageRequest struct {
	Content string `json:"content" binding:"required"`
}

func ListMessages(s *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		list, err := s.History(middleware.CurrentUser(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(list, ""))
	}
}

func SendMessage(s *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req messageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		m, err := s.Send(middleware.CurrentUser(c), id, req.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(m, ""))
	}
}
