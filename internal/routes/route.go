package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/container"
	"github.com/joshua-takyi/streetbite/internal/handlers"
	"github.com/joshua-takyi/streetbite/internal/middleware"
	"github.com/joshua-takyi/streetbite/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	cfg := container.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}
	// an empty list means any origin, as in the websocket hub
	if len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}

	r := gin.New()
	r.Use(cors.New(corsConfig))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.Session([]byte(cfg.SessionSecret), container.Binding, container.Logger))

	customer := middleware.RequireRole(models.RoleCustomer)
	owner := middleware.RequireRole(models.RoleStore)
	member := middleware.RequireRole(models.RoleCustomer, models.RoleStore)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", handlers.Health(container.Binding, container.Hub))
		v1.GET("/ws", handlers.Subscribe(container.Binding, container.Hub, container.Logger))

		// sessions
		v1.POST("/login", handlers.Login(container.SessionService, cfg.IsProduction()))
		v1.POST("/logout", handlers.Logout(cfg.IsProduction()))
		v1.GET("/me", handlers.Me(container.SessionService))
	}

	storeRoutes := v1.Group("/stores")
	{
		storeRoutes.GET("", handlers.ListStores(container.StoreService))
		storeRoutes.POST("", owner, handlers.CreateStore(container.StoreService))
		storeRoutes.GET("/:id", handlers.GetStore(container.StoreService))
		storeRoutes.PATCH("/:id/status", owner, handlers.UpdateStoreStatus(container.StoreService))
		storeRoutes.PUT("/:id/location", owner, handlers.UpdateStoreLocation(container.StoreService))
		storeRoutes.PUT("/:id/schedule", owner, handlers.UpdateStoreSchedule(container.StoreService))
		storeRoutes.GET("/:id/analytics", owner, handlers.StoreAnalytics(container.StoreService))

		storeRoutes.GET("/:id/reviews", handlers.ListReviews(container.ReviewService))
		storeRoutes.POST("/:id/reviews", customer, handlers.CreateReview(container.ReviewService))
		storeRoutes.GET("/:id/reservations", owner, handlers.ListStoreReservations(container.ReservationService))
		storeRoutes.GET("/:id/messages", member, handlers.ListMessages(container.ChatService))
		storeRoutes.POST("/:id/messages", member, handlers.SendMessage(container.ChatService))
	}
	v1.GET("/owners/:owner_id/stores", handlers.ListStoresByOwner(container.StoreService))

	postRoutes := v1.Group("/posts")
	{
		postRoutes.GET("", handlers.ListPosts(container.CommunityService))
		postRoutes.GET("/:id", handlers.GetPost(container.CommunityService))
		postRoutes.POST("", member, handlers.CreatePost(container.CommunityService))
		postRoutes.POST("/:id/like", member, handlers.LikePost(container.CommunityService))
		postRoutes.POST("/:id/comments", member, handlers.AddComment(container.CommunityService))
	}

	reservationRoutes := v1.Group("/reservations")
	{
		reservationRoutes.POST("", customer, handlers.CreateReservation(container.ReservationService))
		reservationRoutes.GET("/mine", member, handlers.ListMyReservations(container.ReservationService))
		reservationRoutes.PATCH("/:id/status", owner, handlers.UpdateReservationStatus(container.ReservationService))
	}

	notificationRoutes := v1.Group("/notifications", member)
	{
		notificationRoutes.GET("", handlers.ListNotifications(container.NotificationService))
		notificationRoutes.PATCH("/:id/read", handlers.MarkNotificationRead(container.NotificationService))
		notificationRoutes.POST("/read-all", handlers.MarkAllNotificationsRead(container.NotificationService))
	}

	return r
}
