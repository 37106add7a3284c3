package store

import (
	"github.com/joshua-takyi/streetbite/internal/models"
)

// AddReservation keeps the caller's status; an empty status becomes pending.
func (s *StateStore) AddReservation(in models.NewReservationInput) (models.Reservation, error) {
	if err := models.ValidateInput(in); err != nil {
		return models.Reservation{}, err
	}
	status := in.Status
	if status == "" {
		status = models.ReservationPending
	}

	s.mu.Lock()
	r := &models.Reservation{
		ID:           s.newID(),
		StoreID:      in.StoreID,
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Date:         in.Date,
		Time:         in.Time,
		People:       in.People,
		Menu:         append([]string(nil), in.Menu...),
		Status:       status,
		CreatedAt:    s.now(),
	}
	s.reservations = append(s.reservations, r)
	out := r.Clone()
	s.mu.Unlock()

	s.notify()
	return out, nil
}

func (s *StateStore) GetReservationByID(id string) (models.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reservations {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return models.Reservation{}, false
}

func (s *StateStore) GetReservationsByStore(storeID string) []models.Reservation {
	return s.filterReservations(func(r *models.Reservation) bool { return r.StoreID == storeID })
}

func (s *StateStore) GetReservationsByCustomer(customerID string) []models.Reservation {
	return s.filterReservations(func(r *models.Reservation) bool { return r.CustomerID == customerID })
}

// UpdateReservationStatus is a no-op for unknown ids and invalid statuses.
// It also returns the status the reservation had before the update.
func (s *StateStore) UpdateReservationStatus(id string, status models.ReservationStatus) (models.Reservation, models.ReservationStatus, bool) {
	if !status.Valid() {
		return models.Reservation{}, "", false
	}

	s.mu.Lock()
	var found *models.Reservation
	for _, r := range s.reservations {
		if r.ID == id {
			found = r
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return models.Reservation{}, "", false
	}
	prev := found.Status
	found.Status = status
	out := found.Clone()
	s.mu.Unlock()

	s.notify()
	return out, prev, true
}

func (s *StateStore) filterReservations(keep func(*models.Reservation) bool) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Reservation{}
	for _, r := range s.reservations {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}
