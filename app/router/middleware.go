package router

import (
	"encoding/json"
	"net/http"
	"time"

	"fanation-admin/models"
	"fanation-admin/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger logs every request with a generated request id.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-Id", requestID)

			start := time.Now()
			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

// AuthGuard gates guarded routes on the session state. While the initial
// token validation is still in flight it answers with a neutral retry
// response so no redirect decision is made; unauthenticated requests get a
// redirect hint to the login view.
func AuthGuard(sessions service.SessionServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessions.Session()
			switch session.State {
			case models.SessionValidating:
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"message": "Validando sessão",
				})
			case models.SessionAuthenticated:
				next.ServeHTTP(w, r)
			default:
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success":  false,
					"message":  "Sessão expirada. Faça login novamente.",
					"redirect": "/login",
				})
			}
		})
	}
}
