package http

import (
	"errors"
	"net/http"
	"strconv"

	"lms/internal/entity"
	"lms/internal/usecase"
)

type RecommendationHandler struct {
	users       usecase.UserRepository
	recommender usecase.Recommender
}

func NewRecommendationHandler(users usecase.UserRepository, recommender usecase.Recommender) *RecommendationHandler {
	return &RecommendationHandler{users: users, recommender: recommender}
}

// @Summary Book recommendations
// @Description Books matching the user's favorite genres or authors, excluding anything already borrowed
// @Tags recommendations
// @Produce json
// @Security Bearer
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = usecase.DefaultRecommendationLimit
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	books, err := h.recommender.RecommendFor(r.Context(), user, limit)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	JSONSuccess(w, books, nil)
}
