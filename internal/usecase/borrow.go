package usecase

import (
	"context"

	"lms/internal/entity"
)

// MaxActiveBorrows is the cap on simultaneous active loans per user.
const MaxActiveBorrows = 3

// BorrowRepository is the lending ledger. Borrow must perform its
// count-and-insert atomically with respect to other Borrow calls for the
// same user, so the cap cannot be exceeded by concurrent requests.
// Return is idempotent: closing an already-returned record reports
// success without a second effect.
type BorrowRepository interface {
	Borrow(ctx context.Context, userID, bookID string) (entity.BorrowRecord, error)
	Return(ctx context.Context, recordID string) (entity.BorrowRecord, error)
	ListByUser(ctx context.Context, userID string) ([]entity.BorrowRecord, error)
}
