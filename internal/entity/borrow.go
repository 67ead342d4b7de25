package entity

import "time"

// BorrowRecord ties a user to a book for one lending. ReturnDate stays
// nil while the loan is active; once set the record is terminal.
type BorrowRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	BookID     string     `json:"book_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	ReturnDate *time.Time `json:"return_date"`
}

func (r BorrowRecord) Active() bool {
	return r.ReturnDate == nil
}
