package store

import (
	"context"
	"errors"

	"lms/internal/entity"
	"lms/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BorrowPG struct {
	db *pgxpool.Pool
}

func NewBorrowPG(db *pgxpool.Pool) *BorrowPG {
	return &BorrowPG{db: db}
}

// Borrow creates an active borrow record for the user. The whole
// check-and-create runs in one transaction that first locks the user
// row, so two concurrent borrows for the same user serialize around the
// active-loan count and the cap of usecase.MaxActiveBorrows holds.
// Borrows for different users lock different rows and do not contend.
func (r *BorrowPG) Borrow(ctx context.Context, userID, bookID string) (entity.BorrowRecord, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entity.BorrowRecord{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var lockedUserID string
	err = tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&lockedUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.BorrowRecord{}, usecase.ErrNotFound
		}
		return entity.BorrowRecord{}, err
	}

	var bookExists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, bookID).Scan(&bookExists); err != nil {
		return entity.BorrowRecord{}, err
	}
	if !bookExists {
		return entity.BorrowRecord{}, usecase.ErrNotFound
	}

	var activeCount int
	const countSQL = `
	SELECT COUNT(*)
	FROM borrow_records
	WHERE user_id = $1 AND return_date IS NULL
	`
	if err := tx.QueryRow(ctx, countSQL, userID).Scan(&activeCount); err != nil {
		return entity.BorrowRecord{}, err
	}
	if activeCount >= usecase.MaxActiveBorrows {
		return entity.BorrowRecord{}, usecase.ErrBorrowLimit
	}

	record := entity.BorrowRecord{UserID: userID, BookID: bookID}
	const insertSQL = `
	INSERT INTO borrow_records (id, user_id, book_id)
	VALUES (gen_random_uuid(), $1, $2)
	RETURNING id, borrowed_at
	`
	if err := tx.QueryRow(ctx, insertSQL, userID, bookID).Scan(&record.ID, &record.BorrowedAt); err != nil {
		return entity.BorrowRecord{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return entity.BorrowRecord{}, err
	}
	return record, nil
}

// Return closes an active borrow record. The update is guarded by
// return_date IS NULL, so a record transitions at most once; returning
// an already-closed record is a no-op that reports success.
func (r *BorrowPG) Return(ctx context.Context, recordID string) (entity.BorrowRecord, error) {
	const closeSQL = `
	UPDATE borrow_records
	SET return_date = NOW()
	WHERE id = $1 AND return_date IS NULL
	RETURNING id, user_id, book_id, borrowed_at, return_date
	`
	record, err := scanBorrowRecord(r.db.QueryRow(ctx, closeSQL, recordID))
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return entity.BorrowRecord{}, err
	}

	// Nothing updated: the record is missing or already returned.
	const getSQL = `
	SELECT id, user_id, book_id, borrowed_at, return_date
	FROM borrow_records
	WHERE id = $1
	LIMIT 1
	`
	record, err = scanBorrowRecord(r.db.QueryRow(ctx, getSQL, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.BorrowRecord{}, usecase.ErrNotFound
		}
		return entity.BorrowRecord{}, err
	}
	return record, nil
}

func (r *BorrowPG) ListByUser(ctx context.Context, userID string) ([]entity.BorrowRecord, error) {
	const query = `
	SELECT id, user_id, book_id, borrowed_at, return_date
	FROM borrow_records
	WHERE user_id = $1
	ORDER BY borrowed_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.BorrowRecord
	for rows.Next() {
		record, err := scanBorrowRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanBorrowRecord(row pgx.Row) (entity.BorrowRecord, error) {
	var record entity.BorrowRecord
	err := row.Scan(&record.ID, &record.UserID, &record.BookID, &record.BorrowedAt, &record.ReturnDate)
	return record, err
}
