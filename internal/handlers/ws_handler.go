package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/binding"
	"github.com/joshua-takyi/streetbite/internal/models"
)

// Subscribe upgrades to a websocket that receives a "refresh" event after
// every state change. The first event carries the current version.
func Subscribe(b *binding.Binding, hub *binding.Hub, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		hello := binding.Event{Type: "hello", Version: b.Version(), At: time.Now()}
		if err := hub.ServeWS(c.Writer, c.Request, hello); err != nil {
			logger.Warn("websocket subscribe failed", "error", err, "client_ip", c.ClientIP())
		}
	}
}

// Health reports liveness plus the binding version and open subscriptions.
func Health(b *binding.Binding, hub *binding.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"status":      "OK",
			"service":     "streetbite-api",
			"version":     b.Version(),
			"subscribers": hub.ClientCount(),
			"stores":      len(b.Stores()),
		}, ""))
	}
}
