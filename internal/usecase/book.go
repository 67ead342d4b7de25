package usecase

import (
	"context"

	"lms/internal/entity"
)

// BookRepository defines the contract for catalog management. IDs are
// assigned by the store on Create; the ISBN is unique across the catalog
// and a collision yields ErrAlreadyExists.
type BookRepository interface {
	Create(ctx context.Context, b *entity.Book) error
	GetByID(ctx context.Context, id string) (entity.Book, error)
	List(ctx context.Context) ([]entity.Book, error)
	Update(ctx context.Context, id string, b *entity.Book) error
	Delete(ctx context.Context, id string) error
}
