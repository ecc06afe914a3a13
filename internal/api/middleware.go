package api

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/zapponejosh/lunar-calendar-api/internal/config"
	"github.com/zapponejosh/lunar-calendar-api/internal/logger"
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

const (
	// RequestIDHeader carries the request ID on requests and responses.
	RequestIDHeader = "X-Request-ID"
	// APIKeyHeader carries the caller's API key.
	APIKeyHeader = "X-API-Key"
)

type userIDKey struct{}

// RequestIDMiddleware tags each request with an ID, reusing a well-formed
// incoming X-Request-ID.
func RequestIDMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
		})
	}
}

// LoggingMiddleware logs one line per request. Server errors log at error
// level and client errors at warn.
func LoggingMiddleware(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}
			log.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Int("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

// statusRecorder captures the status code and body size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// CORSMiddleware allows browser clients from any origin.
func CORSMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Accept-Language, "+APIKeyHeader+", "+RequestIDHeader)
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)
			h.Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RecoveryMiddleware turns a handler panic into a 500 response.
func RecoveryMiddleware(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						panic(p)
					}
					log.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", p),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					WriteInternalError(w, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware checks the API key on the birthday endpoints and stores the
// caller's user ID in the request context. In development with no API_KEY
// configured every request is let through.
func AuthMiddleware(cfg *config.Config, log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)

			if !(cfg.IsDevelopment() && cfg.APIKey == "") {
				if key == "" {
					WriteUnauthorized(w, "Missing API key")
					return
				}
				if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1 {
					log.WarnContext(r.Context(), "invalid API key attempt",
						slog.String("remote_addr", r.RemoteAddr),
						slog.String("path", r.URL.Path),
					)
					WriteUnauthorized(w, "Invalid API key")
					return
				}
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, UserIDForKey(key))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the owner of stored birthdays for r: the ID set by
// AuthMiddleware, or one derived from the request's API key.
func GetUserID(r *http.Request) string {
	if id, ok := r.Context().Value(userIDKey{}).(string); ok {
		return id
	}
	return UserIDForKey(r.Header.Get(APIKeyHeader))
}

// UserIDForKey derives a user ID from an API key: the first 16 hex
// characters of its SHA-256. An empty key maps to the shared "default" user.
func UserIDForKey(apiKey string) string {
	if apiKey == "" {
		return "default"
	}
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:8])
}
