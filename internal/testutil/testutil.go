package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"lms/internal/auth"
	"lms/internal/entity"
)

// TestUser is a mock user for testing
var TestUser = entity.User{
	ID:              "9e8b84cc-0a30-4b99-8a8e-111111111111",
	Name:            "Test Reader",
	Email:           "reader@example.com",
	Password:        "hashedpassword",
	FavoriteGenres:  []string{"Fiction"},
	FavoriteAuthors: []string{"Vincent Gilligan"},
	CreatedAt:       time.Now(),
	UpdatedAt:       time.Now(),
}

// TestBook is a mock book for testing
var TestBook = entity.Book{
	ID:            "9e8b84cc-0a30-4b99-8a8e-222222222222",
	ISBN:          "978-1234567892",
	Title:         "Breaking Bad",
	Author:        "Vincent Gilligan",
	Genre:         "Fiction",
	PublishedYear: 2014,
	Copies:        6,
	CreatedAt:     time.Now(),
	UpdatedAt:     time.Now(),
}

// TestBorrowRecord is an active borrow record for testing
var TestBorrowRecord = entity.BorrowRecord{
	ID:         "9e8b84cc-0a30-4b99-8a8e-333333333333",
	UserID:     TestUser.ID,
	BookID:     TestBook.ID,
	BorrowedAt: time.Now(),
}

// GenerateTestToken generates a JWT token for testing
func GenerateTestToken(secret, userID string) string {
	token, _ := auth.GenerateToken(secret, userID, time.Hour)
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with JWT auth for testing
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse holds a decoded HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
