package usecase

import "errors"

// Sentinel errors shared by all repositories. Handlers map these to
// transport responses; anything else is a storage failure and surfaces
// as an internal error.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrBorrowLimit   = errors.New("borrow limit reached")
	ErrInvalidQuery  = errors.New("invalid search query")
)
