package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/templui/tasklist/internal/ctxkeys"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or generates one, echoes it on
// the response and stores it with the client IP in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := ctxkeys.WithRequestID(r.Context(), id)
		ctx = ctxkeys.WithClientIP(ctx, getClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
