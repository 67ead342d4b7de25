package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns handler panics into 500 responses instead of
// dropping the connection.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.Printf("panic recovered: request_id=%s error=%v stack=%s",
				RequestIDFrom(r), rec, debug.Stack())

			// Skip the error body if the handler already started writing.
			if sw, ok := w.(*statusWriter); ok && sw.written {
				return
			}
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		}()
		next.ServeHTTP(w, r)
	})
}
