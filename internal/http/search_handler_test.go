package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/internal/entity"
	"lms/internal/store/mocks"
	"lms/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSearchHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSearcher := mocks.NewMockBookSearcher(ctrl)
	handler := NewSearchHandler(mockSearcher)

	tests := []struct {
		name           string
		query          string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:  "match by author substring",
			query: "?query=Gilligan",
			setupMock: func() {
				mockSearcher.EXPECT().
					Search(gomock.Any(), "Gilligan").
					Return([]entity.Book{testutil.TestBook}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty query is invalid",
			query:          "",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace query is invalid",
			query:          "?query=%20%20",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "no matches returns empty array",
			query: "?query=zzz",
			setupMock: func() {
				mockSearcher.EXPECT().
					Search(gomock.Any(), "zzz").
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "server error",
			query: "?query=Gilligan",
			setupMock: func() {
				mockSearcher.EXPECT().
					Search(gomock.Any(), "Gilligan").
					Return(nil, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/search"+tt.query, nil)

			handler.Search(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSearchHandler_Search_InvalidQueryBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler := NewSearchHandler(mocks.NewMockBookSearcher(ctrl))

	w := httptest.NewRecorder()
	handler.Search(w, httptest.NewRequest(http.MethodGet, "/search", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	errBody, _ := resp.Body["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_QUERY", errBody["code"])
}
