package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"sofa-shop/internal/auth"
	"sofa-shop/internal/model"
	"sofa-shop/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

// adminIDKey carries the authenticated admin identity through the request
// context.
const adminIDKey contextKey = "adminID"

// AdminID returns the authenticated admin identity from the request
// context, or uuid.Nil when the request did not pass the admin gate.
func AdminID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(adminIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminAuth gates admin routes. The Bearer token must carry a valid
// signature AND its subject must still be a member of the admins table:
// removing the row revokes access immediately, outstanding tokens
// included.
func AdminAuth(tokens *auth.Tokens, authService service.AuthService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing bearer token")
				writeAuthError(w, http.StatusUnauthorized, "Authentication required.", model.ErrCodeUnauthorised)
				return
			}

			adminID, err := tokens.Validate(raw)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("invalid session token")
				writeAuthError(w, http.StatusUnauthorized, "Invalid or expired session.", model.ErrCodeUnauthorised)
				return
			}

			isAdmin, err := authService.IsAdmin(r.Context(), adminID)
			if err != nil {
				logger.Error().Err(err).Str("admin_id", adminID.String()).Msg("admin membership check failed")
				writeAuthError(w, http.StatusInternalServerError, "Something went wrong. Please try again.", model.ErrCodeInternalError)
				return
			}
			if !isAdmin {
				logger.Warn().Str("admin_id", adminID.String()).Str("path", r.URL.Path).Msg("non-admin session rejected")
				writeAuthError(w, http.StatusForbidden, "Admin access required.", model.ErrCodeForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthError writes a JSON auth error without importing the handler
// package.
func writeAuthError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `","code":"` + code + `"}`))
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
