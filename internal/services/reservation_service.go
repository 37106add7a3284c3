package services

import (
	"fmt"
	"strings"

	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
)

type ReservationService struct {
	reservations  models.ReservationsRepo
	stores        models.StoresRepo
	notifications *NotificationService
}

func NewReservationService(reservations models.ReservationsRepo, stores models.StoresRepo, notifications *NotificationService) *ReservationService {
	return &ReservationService{
		reservations:  reservations,
		stores:        stores,
		notifications: notifications,
	}
}

type ReservationRequest struct {
	StoreID string   `json:"store_id"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	People  int      `json:"people"`
	Menu    []string `json:"menu"`
}

// Create books a table for the calling customer. New reservations are
// always pending.
func (rs *ReservationService) Create(claims *helpers.SessionClaims, req ReservationRequest) (models.Reservation, error) {
	if !claims.IsCustomer() {
		if claims.IsGuest() {
			return models.Reservation{}, ErrGuest
		}
		return models.Reservation{}, fmt.Errorf("only customers can make reservations: %w", ErrForbidden)
	}
	st, ok := rs.stores.GetStoreByID(strings.TrimSpace(req.StoreID))
	if !ok {
		return models.Reservation{}, fmt.Errorf("store %s: %w", req.StoreID, ErrNotFound)
	}

	return rs.reservations.AddReservation(models.NewReservationInput{
		StoreID:      st.ID,
		CustomerID:   claims.UserID(),
		CustomerName: claims.DisplayName(),
		Date:         strings.TrimSpace(req.Date),
		Time:         strings.TrimSpace(req.Time),
		People:       req.People,
		Menu:         helpers.RemoveDuplicates(req.Menu),
		Status:       models.ReservationPending,
	})
}

func (rs *ReservationService) ListMine(claims *helpers.SessionClaims) ([]models.Reservation, error) {
	if claims.IsGuest() {
		return nil, ErrGuest
	}
	return rs.reservations.GetReservationsByCustomer(claims.UserID()), nil
}

// ListForStore is restricted to the store's owner.
func (rs *ReservationService) ListForStore(claims *helpers.SessionClaims, storeID string) ([]models.Reservation, error) {
	if err := rs.checkOwner(claims, storeID); err != nil {
		return nil, err
	}
	return rs.reservations.GetReservationsByStore(storeID), nil
}

// UpdateStatus lets the store owner confirm or cancel. Confirming notifies
// the customer.
func (rs *ReservationService) UpdateStatus(claims *helpers.SessionClaims, id string, status models.ReservationStatus) (models.Reservation, error) {
	if !status.Valid() {
		return models.Reservation{}, fmt.Errorf("unknown reservation status %q: %w", status, ErrInvalidInput)
	}
	r, ok := rs.reservations.GetReservationByID(id)
	if !ok {
		return models.Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}
	if err := rs.checkOwner(claims, r.StoreID); err != nil {
		return models.Reservation{}, err
	}
	updated, prev, ok := rs.reservations.UpdateReservationStatus(id, status)
	if !ok {
		return models.Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}

	if status == models.ReservationConfirmed && prev != models.ReservationConfirmed {
		st, _ := rs.stores.GetStoreByID(r.StoreID)
		_, err := rs.notifications.Notify(models.NewNotificationInput{
			UserID:  r.CustomerID,
			Type:    models.NotificationReservationConfirmed,
			Title:   "Reservation confirmed",
			Message: fmt.Sprintf("%s confirmed your reservation for %d on %s at %s", st.Name, r.People, r.Date, r.Time),
			StoreID: r.StoreID,
		})
		if err != nil {
			return updated, err
		}
	}
	return updated, nil
}

func (rs *ReservationService) checkOwner(claims *helpers.SessionClaims, storeID string) error {
	st, ok := rs.stores.GetStoreByID(storeID)
	if !ok {
		return fmt.Errorf("store %s: %w", storeID, ErrNotFound)
	}
	if !claims.IsStoreOwner() || !claims.IsOwner(st.OwnerID) {
		return fmt.Errorf("store %s is owned by someone else: %w", storeID, ErrForbidden)
	}
	return nil
}
