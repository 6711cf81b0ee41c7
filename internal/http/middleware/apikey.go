package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/preston-bernstein/standings-service/internal/http/requestutil"
	"github.com/preston-bernstein/standings-service/internal/logging"
)

const (
	// APIKeyQueryParam is the query parameter display devices send their key in.
	APIKeyQueryParam = "api_key"
	// APIKeyHeader is accepted as an alternative to the query parameter.
	APIKeyHeader = "X-API-Key"
)

// APIKey rejects requests whose key does not match key with 403.
// An empty key leaves the routes open.
func APIKey(key string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.URL.Query().Get(APIKeyQueryParam)
			if got == "" {
				got = r.Header.Get(APIKeyHeader)
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1 {
				next.ServeHTTP(w, r)
				return
			}
			log := logging.FromContext(r.Context(), logger)
			logging.Warn(log, "invalid api key",
				slog.String(logging.FieldPath, r.URL.Path),
				slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
			)
			writeForbidden(w, r, log)
		})
	}
}

func writeForbidden(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	body := map[string]string{"error": "Invalid API key"}
	if reqID := RequestIDFromContext(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	payload, err := sonic.Marshal(body)
	if err != nil {
		logging.Error(logger, "failed to encode response", err)
		return
	}
	_, _ = w.Write(payload)
}
