package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
)

type StoreService struct {
	stores        models.StoresRepo
	notifications *NotificationService
	logger        *slog.Logger
	now           func() time.Time
}

func NewStoreService(stores models.StoresRepo, notifications *NotificationService, logger *slog.Logger) *StoreService {
	return &StoreService{
		stores:        stores,
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

// StoreDetail is a store plus the values views derive from it.
type StoreDetail struct {
	models.Store
	TrustLevel    models.TrustLevel        `json:"trust_level"`
	TodaySchedule *models.LocationSchedule `json:"today_schedule,omitempty"`
}

func (ss *StoreService) detail(st models.Store) StoreDetail {
	now := ss.now()
	d := StoreDetail{Store: st, TrustLevel: st.LocationTrust(now)}
	if st.Schedule != nil {
		d.TodaySchedule = st.Schedule.ForDay(now.Weekday())
	}
	return d
}

// RegisterStore creates a closed store owned by the caller and tells every
// known customer about it.
func (ss *StoreService) RegisterStore(claims *helpers.SessionClaims, in models.NewStoreInput) (models.Store, error) {
	if !claims.IsStoreOwner() {
		return models.Store{}, fmt.Errorf("only store owners can register stores: %w", ErrForbidden)
	}

	menu := make([]string, 0, len(in.Menu))
	for _, item := range in.Menu {
		menu = append(menu, strings.TrimSpace(item))
	}
	in.Menu = helpers.RemoveDuplicates(menu)
	in.Address = strings.TrimSpace(in.Address)

	st, err := ss.stores.AddStore(in, claims.UserID())
	if err != nil {
		return models.Store{}, err
	}
	ss.logger.Info("store registered", "store_id", st.ID, "owner_id", st.OwnerID)

	ss.notifications.NotifyRole(models.RoleCustomer, claims.UserID(), models.NewNotificationInput{
		Type:    models.NotificationNewStore,
		Title:   "New store nearby",
		Message: fmt.Sprintf("%s (%s)", st.Name, st.Location.Address),
		StoreID: st.ID,
	})
	return st, nil
}

func (ss *StoreService) ListStores(menuFilters []string) []StoreDetail {
	stores := ss.stores.GetStores(menuFilters...)
	out := make([]StoreDetail, 0, len(stores))
	for _, st := range stores {
		out = append(out, ss.detail(st))
	}
	return out
}

// ViewStore counts a view and returns the fresh store.
func (ss *StoreService) ViewStore(id string) (StoreDetail, error) {
	if !ss.stores.IncrementStoreViewCount(id) {
		return StoreDetail{}, fmt.Errorf("store %s: %w", id, ErrNotFound)
	}
	st, ok := ss.stores.GetStoreByID(id)
	if !ok {
		return StoreDetail{}, fmt.Errorf("store %s: %w", id, ErrNotFound)
	}
	return ss.detail(st), nil
}

func (ss *StoreService) StoresByOwner(ownerID string) []StoreDetail {
	stores := ss.stores.GetStoresByOwner(ownerID)
	out := make([]StoreDetail, 0, len(stores))
	for _, st := range stores {
		out = append(out, ss.detail(st))
	}
	return out
}

// ownedStore loads id and checks the caller owns it.
func (ss *StoreService) ownedStore(claims *helpers.SessionClaims, id string) (models.Store, error) {
	st, ok := ss.stores.GetStoreByID(id)
	if !ok {
		return models.Store{}, fmt.Errorf("store %s: %w", id, ErrNotFound)
	}
	if !claims.IsStoreOwner() || !claims.IsOwner(st.OwnerID) {
		return models.Store{}, fmt.Errorf("store %s is owned by someone else: %w", id, ErrForbidden)
	}
	return st, nil
}

// SetStatus opens or closes the caller's store. Opening a closed store
// notifies customers.
func (ss *StoreService) SetStatus(claims *helpers.SessionClaims, id string, isOpen bool) (StoreDetail, error) {
	st, err := ss.ownedStore(claims, id)
	if err != nil {
		return StoreDetail{}, err
	}
	wasOpen := st.IsOpen
	if !ss.stores.UpdateStoreStatus(id, isOpen) {
		return StoreDetail{}, fmt.Errorf("store %s: %w", id, ErrNotFound)
	}
	st.IsOpen = isOpen

	if isOpen && !wasOpen {
		ss.notifications.NotifyRole(models.RoleCustomer, claims.UserID(), models.NewNotificationInput{
			Type:    models.NotificationStoreOpened,
			Title:   "Store is open",
			Message: fmt.Sprintf("%s is now open at %s", st.Name, st.Location.Address),
			StoreID: st.ID,
		})
	}
	return ss.detail(st), nil
}

func (ss *StoreService) UpdateLocation(claims *helpers.SessionClaims, id string, in models.LocationInput) (StoreDetail, error) {
	in.Address = strings.TrimSpace(in.Address)
	if err := models.ValidateInput(in); err != nil {
		return StoreDetail{}, err
	}
	if _, err := ss.ownedStore(claims, id); err != nil {
		return StoreDetail{}, err
	}
	if !ss.stores.UpdateStoreLocation(id, in.Lat, in.Lng, in.Address) {
		return StoreDetail{}, fmt.Errorf("store %s: %w", id, ErrNotFound)
	}
	st, _ := ss.stores.GetStoreByID(id)
	return ss.detail(st), nil
}

func (ss *StoreService) UpdateSchedule(claims *helpers.SessionClaims, id string, schedule models.WeeklySchedule) (StoreDetail, error) {
	if err := models.ValidateInput(schedule); err != nil {
		return StoreDetail{}, err
	}
	if _, err := ss.ownedStore(claims, id); err != nil {
		return StoreDetail{}, err
	}
	if !ss.stores.UpdateStoreSchedule(id, schedule) {
		return StoreDetail{}, fmt.Errorf("store %s: %w", id, ErrNotFound)
	}
	st, _ := ss.stores.GetStoreByID(id)
	return ss.detail(st), nil
}

// Analytics is only visible to the store's owner.
func (ss *StoreService) Analytics(claims *helpers.SessionClaims, id string) (models.AnalyticsSummary, error) {
	if _, err := ss.ownedStore(claims, id); err != nil {
		return models.AnalyticsSummary{}, err
	}
	return models.SummarizeAnalytics(id, ss.stores.GetAnalyticsByStore(id)), nil
}
