package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	agendaHTTP "agenda-notifier/internal/agenda/delivery/http"
	"agenda-notifier/internal/middleware"
	"agenda-notifier/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Agenda triggers, nil when no trigger token is configured
	agendaHandler agendaHTTP.Handler
	middleware    middleware.Middleware

	// Readiness
	ready func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For. Empty trusts none, so the
	// client IP is always the peer address.
	TrustedProxies []string

	AgendaHandler agendaHTTP.Handler
	Middleware    middleware.Middleware

	// Ready reports whether the process can serve traffic. Optional.
	Ready func() error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		agendaHandler: cfg.AgendaHandler,
		middleware:    cfg.Middleware,
		ready:         cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
