package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms/internal/entity"
	"lms/internal/store/mocks"
	"lms/internal/testutil"
	"lms/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}

func TestBorrowHandler_Borrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBorrowRepository(ctrl)
	handler := NewBorrowHandler(mockRepo)

	userID := testutil.TestUser.ID
	bookID := testutil.TestBook.ID

	tests := []struct {
		name           string
		path           string
		authenticated  bool
		setupMock      func()
		expectedStatus int
	}{
		{
			name:          "success",
			path:          "/borrow/" + bookID,
			authenticated: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Borrow(gomock.Any(), userID, bookID).
					Return(entity.BorrowRecord{ID: "rec-1", UserID: userID, BookID: bookID, BorrowedAt: time.Now()}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			path:           "/borrow/" + bookID,
			authenticated:  false,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "book not found",
			path:          "/borrow/missing-book",
			authenticated: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Borrow(gomock.Any(), userID, "missing-book").
					Return(entity.BorrowRecord{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "limit exceeded creates no record",
			path:          "/borrow/" + bookID,
			authenticated: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Borrow(gomock.Any(), userID, bookID).
					Return(entity.BorrowRecord{}, usecase.ErrBorrowLimit)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:          "server error",
			path:          "/borrow/" + bookID,
			authenticated: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Borrow(gomock.Any(), userID, bookID).
					Return(entity.BorrowRecord{}, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.authenticated {
				r = withUser(r, userID)
			}

			handler.Borrow(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBorrowHandler_Borrow_LimitResponseBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBorrowRepository(ctrl)
	handler := NewBorrowHandler(mockRepo)

	mockRepo.EXPECT().
		Borrow(gomock.Any(), testutil.TestUser.ID, testutil.TestBook.ID).
		Return(entity.BorrowRecord{}, usecase.ErrBorrowLimit)

	w := httptest.NewRecorder()
	r := withUser(httptest.NewRequest(http.MethodPost, "/borrow/"+testutil.TestBook.ID, nil), testutil.TestUser.ID)
	handler.Borrow(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusConflict, resp.Code)
	errBody, _ := resp.Body["error"].(map[string]interface{})
	assert.Equal(t, "BORROW_LIMIT", errBody["code"])
}

func TestBorrowHandler_Return(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBorrowRepository(ctrl)
	handler := NewBorrowHandler(mockRepo)

	userID := testutil.TestUser.ID
	returnedAt := time.Now()
	closedRecord := entity.BorrowRecord{
		ID:         "rec-1",
		UserID:     userID,
		BookID:     testutil.TestBook.ID,
		BorrowedAt: returnedAt.Add(-48 * time.Hour),
		ReturnDate: &returnedAt,
	}

	tests := []struct {
		name           string
		path           string
		authenticated  bool
		setupMock      func()
		expectedStatus int
	}{
		{
			name:          "success",
			path:          "/return/rec-1",
			authenticated: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Return(gomock.Any(), "rec-1").
					Return(closedRecord, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "already returned is a no-op success",
			path:          "/return/rec-1",
			authenticated: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Return(gomock.Any(), "rec-1").
					Return(closedRecord, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "record not found",
			path:          "/return/missing",
			authenticated: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Return(gomock.Any(), "missing").
					Return(entity.BorrowRecord{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unauthenticated",
			path:           "/return/rec-1",
			authenticated:  false,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.authenticated {
				r = withUser(r, userID)
			}

			handler.Return(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBorrowHandler_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBorrowRepository(ctrl)
	handler := NewBorrowHandler(mockRepo)

	t.Run("empty history returns empty array", func(t *testing.T) {
		mockRepo.EXPECT().
			ListByUser(gomock.Any(), testutil.TestUser.ID).
			Return(nil, nil)

		w := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/loans", nil), testutil.TestUser.ID)
		handler.ListMine(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.NotNil(t, resp.Body["data"])
	})
}
