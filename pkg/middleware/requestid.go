package middleware

import (
	"net/http"

	"media-watchlist/pkg/utils"

	"github.com/google/uuid"
)

// RequestID middleware attaches a unique ID to every request. The logger
// middleware picks it up from the context, and it is echoed back in the
// X-Request-Id header for client-side correlation.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			ctx := utils.SetRequestIDContext(r.Context(), requestID)
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
