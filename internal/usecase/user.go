package usecase

import (
	"context"

	"lms/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
	// UpdatePreferences replaces the favorite genre/author sets consumed
	// read-only by recommendations.
	UpdatePreferences(ctx context.Context, userID string, genres, authors []string) error
}
