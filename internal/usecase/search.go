package usecase

import (
	"context"
	"strings"

	"lms/internal/entity"
)

// BookSearcher matches books whose title, author, or ISBN contains the
// query as a case-insensitive substring.
type BookSearcher interface {
	Search(ctx context.Context, query string) ([]entity.Book, error)
}

// ValidateSearchQuery rejects empty or whitespace-only queries before
// they reach the store.
func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrInvalidQuery
	}
	return nil
}
