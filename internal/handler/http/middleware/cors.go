// Package middleware holds cross-cutting HTTP middleware that needs its own
// configuration, currently CORS.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins, compared
	// case-insensitively without a trailing slash. "*" allows any origin
	// but then credentials are never allowed.
	// Example: ["http://localhost:3000", "https://example.com"]
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	Logger *slog.Logger
}

// DefaultCORSMethods and DefaultCORSHeaders cover the summaries API.
var (
	DefaultCORSMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	DefaultCORSHeaders = []string{"Content-Type", "X-Request-ID"}
)

// WhitelistValidator implements exact-match origin validation for CORS requests.
type WhitelistValidator struct {
	allowAny       bool
	allowedOrigins map[string]struct{}
}

// NewWhitelistValidator normalizes origins (lower case, no trailing slash)
// and drops empty entries.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	v := &WhitelistValidator{allowedOrigins: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		origin = normalizeOrigin(origin)
		switch origin {
		case "":
			continue
		case "*":
			v.allowAny = true
		default:
			v.allowedOrigins[origin] = struct{}{}
		}
	}
	return v
}

// IsAllowed checks if the given origin is in the whitelist.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	if v.allowAny {
		return true
	}
	_, ok := v.allowedOrigins[origin]
	return ok
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
// With no allowed origins it is a no-op.
//
// Behavior:
//   - If Origin header is empty, skip CORS processing (same-origin request)
//   - If Origin is not allowed, log and continue without CORS headers
//   - Allowed preflight (OPTIONS with Access-Control-Request-Method) gets 204
//     and never reaches the next handler
//   - Allowed actual requests get Access-Control-Allow-Origin and pass through
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	validator := NewWhitelistValidator(config.AllowedOrigins)
	methods := config.AllowedMethods
	if len(methods) == 0 {
		methods = DefaultCORSMethods
	}
	headers := config.AllowedHeaders
	if len(headers) == 0 {
		headers = DefaultCORSHeaders
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		if len(config.AllowedOrigins) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !validator.IsAllowed(origin) {
				logger.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method))
				next.ServeHTTP(w, r)
				return
			}

			if validator.allowAny {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				// 資格情報付きリクエストには Origin をそのまま返す
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(headers, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
