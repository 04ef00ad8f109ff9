package http

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"

	"github.com/bnema/fetchbot/internal/adapter/http/ratelimit"
	"github.com/bnema/fetchbot/internal/infrastructure/logger"
)

const realm = "fetchbot admin"

type Authenticator interface {
	Verify(username, password string) error
}

// BasicAuth guards next with HTTP basic authentication. Failed attempts are
// counted per client and lock the client out once the limiter trips.
func BasicAuth(auth Authenticator, limiter *ratelimit.LoginRateLimiter, behindProxy bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientIP(r, behindProxy)

		if allowed, remaining := limiter.Allow(client); !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(math.Ceil(remaining.Seconds()))))
			http.Error(w, "Too many failed logins", http.StatusTooManyRequests)
			return
		}

		user, pass, ok := r.BasicAuth()
		if !ok {
			challenge(w)
			return
		}
		if err := auth.Verify(user, pass); err != nil {
			limiter.Fail(client)
			logger.Warn.Printf("admin login failed for %s from %s", logger.SanitizeForLog(user), client)
			challenge(w)
			return
		}
		limiter.Reset(client)

		next.ServeHTTP(w, r)
	})
}

func challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q, charset=\"UTF-8\"", realm))
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

// clientIP trusts X-Forwarded-For only behind a reverse proxy.
func clientIP(r *http.Request, behindProxy bool) string {
	if behindProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
