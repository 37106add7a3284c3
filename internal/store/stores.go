package store

import (
	"strings"

	"github.com/joshua-takyi/streetbite/internal/models"
)

// Registered stores start closed; coordinates fall back to a jitter of
// roughly ±500m around the default map centre.
const coordinateJitter = 0.01

func (s *StateStore) AddStore(in models.NewStoreInput, ownerID string) (models.Store, error) {
	if err := models.ValidateInput(in); err != nil {
		return models.Store{}, err
	}

	s.mu.Lock()
	st := &models.Store{
		ID:           s.newID(),
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.TrimSpace(in.Category),
		Description:  strings.TrimSpace(in.Description),
		IsOpen:       false,
		Menu:         append([]string(nil), in.Menu...),
		OwnerID:      ownerID,
		Phone:        in.Phone,
		OpeningHours: in.OpeningHours,
		IsGpsTracked: in.IsGpsTracked,
		Location: models.Location{
			Lat:     models.DefaultLatitude + (s.rng.Float64()-0.5)*coordinateJitter,
			Lng:     models.DefaultLongitude + (s.rng.Float64()-0.5)*coordinateJitter,
			Address: in.Address,
		},
	}
	if in.Lat != nil && in.Lng != nil {
		st.Location.Lat = *in.Lat
		st.Location.Lng = *in.Lng
	}
	s.stores = append(s.stores, st)
	out := st.Clone()
	s.mu.Unlock()

	s.logger.Debug("store registered", "store_id", out.ID, "owner_id", ownerID)
	s.notify()
	return out, nil
}

func (s *StateStore) UpdateStoreStatus(storeID string, isOpen bool) bool {
	return s.mutateStore(storeID, func(st *models.Store) {
		st.IsOpen = isOpen
	})
}

func (s *StateStore) IncrementStoreViewCount(storeID string) bool {
	return s.mutateStore(storeID, func(st *models.Store) {
		st.ViewCount++
	})
}

func (s *StateStore) UpdateStoreLocation(storeID string, lat, lng float64, address string) bool {
	now := s.now()
	return s.mutateStore(storeID, func(st *models.Store) {
		st.Location = models.Location{Lat: lat, Lng: lng, Address: address}
		st.LastLocationUpdate = &now
	})
}

// UpdateStoreSchedule replaces the whole weekly schedule.
func (s *StateStore) UpdateStoreSchedule(storeID string, schedule models.WeeklySchedule) bool {
	sc := schedule.Clone()
	return s.mutateStore(storeID, func(st *models.Store) {
		st.Schedule = &sc
	})
}

// GetStores returns every store in insertion order. When filters are given
// only stores with a menu item containing at least one of the terms are
// kept. Blank terms are ignored.
func (s *StateStore) GetStores(menuFilters ...string) []models.Store {
	terms := make([]string, 0, len(menuFilters))
	for _, f := range menuFilters {
		if f = strings.TrimSpace(f); f != "" {
			terms = append(terms, f)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Store, 0, len(s.stores))
	for _, st := range s.stores {
		if len(terms) > 0 && !menuMatches(st.Menu, terms) {
			continue
		}
		out = append(out, st.Clone())
	}
	return out
}

func (s *StateStore) GetStoreByID(id string) (models.Store, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.findStore(id)
	if st == nil {
		return models.Store{}, false
	}
	return st.Clone(), true
}

func (s *StateStore) GetStoresByOwner(ownerID string) []models.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Store{}
	for _, st := range s.stores {
		if st.OwnerID == ownerID {
			out = append(out, st.Clone())
		}
	}
	return out
}

func (s *StateStore) GetAnalyticsByStore(storeID string) []models.LocationAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.LocationAnalytics{}
	for _, a := range s.analytics {
		if a.StoreID == storeID {
			out = append(out, a)
		}
	}
	return out
}

func menuMatches(menu, terms []string) bool {
	for _, item := range menu {
		for _, t := range terms {
			if strings.Contains(item, t) {
				return true
			}
		}
	}
	return false
}

// mutateStore applies fn under the write lock and notifies on success.
func (s *StateStore) mutateStore(storeID string, fn func(*models.Store)) bool {
	s.mu.Lock()
	st := s.findStore(storeID)
	if st == nil {
		s.mu.Unlock()
		return false
	}
	fn(st)
	s.mu.Unlock()

	s.notify()
	return true
}

func (s *StateStore) findStore(id string) *models.Store {
	for _, st := range s.stores {
		if st.ID == id {
			return st
		}
	}
	return nil
}
