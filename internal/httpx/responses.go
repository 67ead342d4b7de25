package httpx

import (
	"encoding/json"
	"net/http"
)

// JSONError writes the same envelope the handler layer uses, for errors
// produced by middleware before a handler runs.
func JSONError(w http.ResponseWriter, statusCode int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
