package http

import (
	"errors"
	"net/http"

	"lms/internal/entity"
	"lms/internal/usecase"
)

type BorrowHandler struct {
	repo usecase.BorrowRepository
}

func NewBorrowHandler(repo usecase.BorrowRepository) *BorrowHandler {
	return &BorrowHandler{repo: repo}
}

// @Summary Borrow a book
// @Description Borrow a book for the authenticated user; at most 3 active loans per user
// @Tags borrow
// @Produce json
// @Security Bearer
// @Param bookId path string true "Book ID"
// @Success 201 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /borrow/{bookId} [post]
func (h *BorrowHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}
	bookID, ok := pathParam(r.URL.Path, "/borrow/")
	if !ok {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	record, err := h.repo.Borrow(r.Context(), userID, bookID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, usecase.ErrBorrowLimit):
			JSONError(w, http.StatusConflict, "BORROW_LIMIT", "You have already borrowed the maximum number of books", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	JSONSuccessCreated(w, record)
}

// @Summary Return a borrowed book
// @Description Close a borrow record; returning an already-returned record is a no-op
// @Tags borrow
// @Produce json
// @Security Bearer
// @Param recordId path string true "Borrow record ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /return/{recordId} [post]
func (h *BorrowHandler) Return(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}
	recordID, ok := pathParam(r.URL.Path, "/return/")
	if !ok {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Borrow record not found", nil)
		return
	}

	record, err := h.repo.Return(r.Context(), recordID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Borrow record not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, record, nil)
}

// @Summary List loans
// @Description List the authenticated user's borrow records, newest first
// @Tags borrow
// @Produce json
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /loans [get]
func (h *BorrowHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	records, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if records == nil {
		records = []entity.BorrowRecord{}
	}
	JSONSuccess(w, records, nil)
}
