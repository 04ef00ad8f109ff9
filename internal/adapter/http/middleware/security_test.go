package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders_StaticHeaders(t *testing.T) {
	handler := SecurityHeaders(okHandler())

	tests := []struct {
		header   string
		expected string
	}{
		{header: "X-Content-Type-Options", expected: "nosniff"},
		{header: "X-Frame-Options", expected: "DENY"},
		{header: "Referrer-Policy", expected: "no-referrer"},
		{header: "Permissions-Policy", expected: "camera=(), microphone=(), geolocation=()"},
		{header: "Cache-Control", expected: "no-store"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Header().Get(tt.header))
		})
	}
}

func TestSecurityHeaders_CSP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	SecurityHeaders(okHandler()).ServeHTTP(rec, req)

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'none'")
	assert.Contains(t, csp, "frame-ancestors 'none'")
	assert.NotContains(t, csp, "unsafe-inline")
}

func TestSecurityHeaders_HSTS(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    bool
	}{
		{name: "plain http", prepare: func(*http.Request) {}, want: false},
		{name: "forwarded https", prepare: func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "https") }, want: true},
		{name: "forwarded http", prepare: func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "http") }, want: false},
		{name: "direct tls", prepare: func(r *http.Request) { r.TLS = &tls.ConnectionState{} }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			SecurityHeaders(okHandler()).ServeHTTP(rec, req)

			if tt.want {
				assert.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
			} else {
				assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
			}
		})
	}
}

func TestRequestLog_PassesThroughStatus(t *testing.T) {
	handler := RequestLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
