package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/fetchbot/internal/adapter/http/middleware"
	"github.com/bnema/fetchbot/internal/adapter/http/ratelimit"
	"github.com/bnema/fetchbot/internal/port"
)

// Login lockout: five failures within fifteen minutes block the client for
// thirty minutes.
const (
	maxLoginFailures = 5
	loginWindow      = 15 * time.Minute
	loginBlock       = 30 * time.Minute
)

type ServerDeps struct {
	Auth        Authenticator
	Capacity    Capacity
	History     port.JobHistory
	Events      EventSource
	Gatherer    prometheus.Gatherer
	BehindProxy bool
}

// Server is the admin HTTP surface. Everything except /healthz requires
// basic authentication.
type Server struct {
	mux         *http.ServeMux
	handlers    *Handlers
	sseHandler  *SSEHandler
	auth        Authenticator
	gatherer    prometheus.Gatherer
	rateLimiter *ratelimit.LoginRateLimiter
	behindProxy bool
}

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		handlers:    NewHandlers(deps.Capacity, deps.History, deps.Events),
		sseHandler:  NewSSEHandler(deps.Events, deps.History),
		auth:        deps.Auth,
		gatherer:    deps.Gatherer,
		rateLimiter: ratelimit.NewLoginRateLimiter(maxLoginFailures, loginWindow, loginBlock),
		behindProxy: deps.BehindProxy,
	}

	s.registerRoutes()

	return s
}

func (s *Server) protected(h http.Handler) http.Handler {
	return BasicAuth(s.auth, s.rateLimiter, s.behindProxy, h)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /healthz", s.handlers.Health())

	s.mux.Handle("GET /metrics", s.protected(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	s.mux.Handle("GET /jobs", s.protected(s.handlers.Jobs()))
	s.mux.Handle("GET /jobs/{id}", s.protected(s.handlers.Job()))

	s.mux.Handle("GET /events/{id}", s.protected(s.sseHandler.Events()))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.RequestLog(middleware.SecurityHeaders(s.mux)).ServeHTTP(w, r)
}

// Close releases the login limiter.
func (s *Server) Close() {
	s.rateLimiter.Close()
}
