package store

import (
	"math"

	"github.com/joshua-takyi/streetbite/internal/models"
)

// AddReview records the review and recomputes the owning store's average
// rating (one decimal place) and review count from every review on file.
// A review for an unknown store is still recorded.
func (s *StateStore) AddReview(in models.NewReviewInput) (models.Review, error) {
	in.Sanitize()
	if err := models.ValidateInput(in); err != nil {
		return models.Review{}, err
	}

	s.mu.Lock()
	r := &models.Review{
		ID:           s.newID(),
		StoreID:      in.StoreID,
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Rating:       in.Rating,
		Comment:      in.Comment,
		Images:       in.Images,
		CreatedAt:    s.now(),
	}
	s.reviews = append(s.reviews, r)
	s.recomputeRating(in.StoreID)
	out := r.Clone()
	s.mu.Unlock()

	s.notify()
	return out, nil
}

func (s *StateStore) GetReviewsByStore(storeID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Review{}
	for _, r := range s.reviews {
		if r.StoreID == storeID {
			out = append(out, r.Clone())
		}
	}
	return out
}

// recomputeRating expects s.mu to be held for writing.
func (s *StateStore) recomputeRating(storeID string) {
	st := s.findStore(storeID)
	if st == nil {
		return
	}
	total, count := 0, 0
	for _, r := range s.reviews {
		if r.StoreID == storeID {
			total += r.Rating
			count++
		}
	}
	st.ReviewCount = count
	if count == 0 {
		st.AverageRating = 0
		return
	}
	st.AverageRating = roundOneDecimal(float64(total) / float64(count))
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
