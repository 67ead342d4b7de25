package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/internal/entity"
	"lms/internal/store/mocks"
	"lms/internal/testutil"
	"lms/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRecommendationHandler_Recommend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockRecommender := mocks.NewMockRecommender(ctrl)
	handler := NewRecommendationHandler(mockUsers, mockRecommender)

	userID := testutil.TestUser.ID

	tests := []struct {
		name           string
		target         string
		authenticated  bool
		setupMock      func()
		expectedStatus int
	}{
		{
			name:          "success with default limit",
			target:        "/recommendations",
			authenticated: true,
			setupMock: func() {
				mockUsers.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(testutil.TestUser, nil)
				mockRecommender.EXPECT().
					RecommendFor(gomock.Any(), testutil.TestUser, usecase.DefaultRecommendationLimit).
					Return([]entity.Book{testutil.TestBook}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "explicit limit",
			target:        "/recommendations?limit=3",
			authenticated: true,
			setupMock: func() {
				mockUsers.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(testutil.TestUser, nil)
				mockRecommender.EXPECT().
					RecommendFor(gomock.Any(), testutil.TestUser, 3).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "absurd limit falls back to default",
			target:        "/recommendations?limit=9999",
			authenticated: true,
			setupMock: func() {
				mockUsers.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(testutil.TestUser, nil)
				mockRecommender.EXPECT().
					RecommendFor(gomock.Any(), testutil.TestUser, usecase.DefaultRecommendationLimit).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "user not found",
			target:        "/recommendations",
			authenticated: true,
			setupMock: func() {
				mockUsers.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(entity.User{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unauthenticated",
			target:         "/recommendations",
			authenticated:  false,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "server error",
			target:        "/recommendations",
			authenticated: true,
			setupMock: func() {
				mockUsers.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(testutil.TestUser, nil)
				mockRecommender.EXPECT().
					RecommendFor(gomock.Any(), testutil.TestUser, usecase.DefaultRecommendationLimit).
					Return(nil, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.authenticated {
				r = withUser(r, userID)
			}

			handler.Recommend(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
