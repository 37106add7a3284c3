package container

import (
	"log/slog"
	"time"

	"github.com/joshua-takyi/streetbite/internal/binding"
	"github.com/joshua-takyi/streetbite/internal/config"
	"github.com/joshua-takyi/streetbite/internal/services"
	"github.com/joshua-takyi/streetbite/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Logger  *slog.Logger
	Config  *config.Config
	State   *store.StateStore
	Binding *binding.Binding
	Hub     *binding.Hub

	SessionService      *services.SessionService
	StoreService        *services.StoreService
	CommunityService    *services.CommunityService
	ReservationService  *services.ReservationService
	ReviewService       *services.ReviewService
	NotificationService *services.NotificationService
	ChatService         *services.ChatService
}

// NewContainer builds the State Store, the binding on top of it and every
// service. All services go through the binding so each mutation refreshes
// the cached snapshot and reaches websocket subscribers.
func NewContainer(logger *slog.Logger, cfg *config.Config, opts ...store.Option) *Container {
	storeOpts := []store.Option{store.WithLogger(logger)}
	if cfg.SeedFixtures {
		storeOpts = append(storeOpts, store.WithFixtures(store.DefaultFixtures(time.Now())))
	}
	state := store.New(append(storeOpts, opts...)...)

	b := binding.New(state)
	hub := binding.NewHub(logger, cfg.AllowedOrigins)
	b.OnRefresh(func(version uint64) {
		hub.Broadcast(binding.Event{Type: "refresh", Version: version})
	})

	notificationService := services.NewNotificationService(b, b, logger)

	return &Container{
		Logger:  logger,
		Config:  cfg,
		State:   state,
		Binding: b,
		Hub:     hub,

		SessionService:      services.NewSessionService(b, []byte(cfg.SessionSecret), cfg.SessionTTL),
		StoreService:        services.NewStoreService(b, notificationService, logger),
		CommunityService:    services.NewCommunityService(b, b),
		ReservationService:  services.NewReservationService(b, b, notificationService),
		ReviewService:       services.NewReviewService(b, b),
		NotificationService: notificationService,
		ChatService:         services.NewChatService(b, b),
	}
}

// Close detaches the binding and disconnects websocket subscribers.
func (c *Container) Close() {
	c.Hub.Close()
	c.Binding.Close()
}
