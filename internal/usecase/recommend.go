package usecase

import (
	"context"

	"lms/internal/entity"
)

// DefaultRecommendationLimit bounds a recommendation response when the
// caller does not ask for a specific size.
const DefaultRecommendationLimit = 10

// Recommender selects books matching the user's favorite genres or
// authors, excluding every book that appears in the user's borrow
// history (active or historical). Results are ordered by id so repeated
// calls over unchanged data return the same set.
type Recommender interface {
	RecommendFor(ctx context.Context, user entity.User, limit int) ([]entity.Book, error)
}
