package http

import (
	"errors"
	"net/http"

	"lms/internal/entity"
	"lms/internal/usecase"
)

type SearchHandler struct {
	searcher usecase.BookSearcher
}

func NewSearchHandler(searcher usecase.BookSearcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// @Summary Search books
// @Description Case-insensitive substring match over title, author, and ISBN
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if err := usecase.ValidateSearchQuery(query); err != nil {
		if errors.Is(err, usecase.ErrInvalidQuery) {
			JSONError(w, http.StatusBadRequest, "INVALID_QUERY", "Invalid search query", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	books, err := h.searcher.Search(r.Context(), query)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	JSONSuccess(w, books, nil)
}
