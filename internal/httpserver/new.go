package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-memos/internal/memo"
	"voice-memos/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware settings
	apiToken        string
	rateLimitPerMin int

	// Memo domain
	memoUC memo.UseCase
	db     Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	APIToken        string
	RateLimitPerMin int

	// Memo domain
	MemoUseCase memo.UseCase
	// DB, when set, is pinged by /ready.
	DB Pinger
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		apiToken:        cfg.APIToken,
		rateLimitPerMin: cfg.RateLimitPerMin,
		memoUC:          cfg.MemoUseCase,
		db:              cfg.DB,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
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
	if srv.memoUC == nil {
		return errors.New("memo use case is required")
	}
	return nil
}
