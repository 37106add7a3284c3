package services

import (
	"fmt"

	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
)

type ReviewService struct {
	reviews models.ReviewsRepo
	stores  models.StoresRepo
}

func NewReviewService(reviews models.ReviewsRepo, stores models.StoresRepo) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		stores:  stores,
	}
}

// Create records a customer review; the store's rating aggregate is updated
// as part of the same call.
func (rs *ReviewService) Create(claims *helpers.SessionClaims, storeID string, rating int, comment string, images []string) (models.Review, error) {
	if !claims.IsCustomer() {
		if claims.IsGuest() {
			return models.Review{}, ErrGuest
		}
		return models.Review{}, fmt.Errorf("only customers can review stores: %w", ErrForbidden)
	}
	if _, ok := rs.stores.GetStoreByID(storeID); !ok {
		return models.Review{}, fmt.Errorf("store %s: %w", storeID, ErrNotFound)
	}

	return rs.reviews.AddReview(models.NewReviewInput{
		StoreID:      storeID,
		CustomerID:   claims.UserID(),
		CustomerName: claims.DisplayName(),
		Rating:       rating,
		Comment:      comment,
		Images:       images,
	})
}

func (rs *ReviewService) ListForStore(storeID string) ([]models.Review, error) {
	if _, ok := rs.stores.GetStoreByID(storeID); !ok {
		return nil, fmt.Errorf("store %s: %w", storeID, ErrNotFound)
	}
	return rs.reviews.GetReviewsByStore(storeID), nil
}
