package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"items-api/pkg/log"
	"items-api/pkg/postgre"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	routePrefix     string
	shutdownTimeout time.Duration

	// Middleware
	rateLimitPerMin    int
	corsAllowedOrigins []string

	// Database
	db       *sql.DB
	provider postgre.Provider
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// RoutePrefix is prepended to every domain route, e.g. "/api/v1".
	RoutePrefix        string
	RateLimitPerMin    int
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	DB              *sql.DB
	SessionProvider postgre.Provider
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if logger == nil {
		logger = cfg.Logger
	}

	srv := &HTTPServer{
		l:                  logger,
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		routePrefix:        cfg.RoutePrefix,
		shutdownTimeout:    cfg.ShutdownTimeout,
		rateLimitPerMin:    cfg.RateLimitPerMin,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		db:                 cfg.DB,
		provider:           cfg.SessionProvider,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(srv.mode)
	srv.gin = gin.New()
	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	switch srv.mode {
	case "":
		return errors.New("mode is required")
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unknown gin mode %q", srv.mode)
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.provider == nil {
		return errors.New("session provider is required")
	}
	return nil
}
