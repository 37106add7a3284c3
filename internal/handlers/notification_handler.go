package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/middleware"
	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/joshua-takyi/streetbite/internal/services"
)

type notificationList struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

func ListNotifications(s *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, unread, err := s.List(middleware.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(notificationList{Notifications: list, Unread: unread}, ""))
	}
}

func MarkNotificationRead(s *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		n, err := s.MarkRead(middleware.CurrentUser(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(n, ""))
	}
}

func MarkAllNotificationsRead(s *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		changed, err := s.MarkAllRead(middleware.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"updated": changed}, "All notifications marked as read"))
	}
}
