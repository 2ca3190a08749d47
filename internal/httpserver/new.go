package httpserver

import (
	"errors"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/announcement"
	"mango-alerts-srv/internal/watcher"
	"mango-alerts-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// HTTPServer owns the HTTP surface and the background watcher. New()
// only wires dependencies and validates them; Run() starts everything.
type HTTPServer struct {
	// Server configuration
	gin    *gin.Engine
	logger log.Logger
	port   int
	mode   string

	// Domain usecases
	alertUC alert.UseCase
	annUC   announcement.UseCase

	// Background poll loop
	watcher *watcher.Watcher
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	AlertUC        alert.UseCase
	AnnouncementUC announcement.UseCase
	Watcher        *watcher.Watcher
}

// New creates a new HTTPServer instance with the provided configuration.
// It does not start any goroutines; use (*HTTPServer).Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:     gin.New(),
		logger:  logger,
		port:    cfg.Port,
		mode:    cfg.Mode,
		alertUC: cfg.AlertUC,
		annUC:   cfg.AnnouncementUC,
		watcher: cfg.Watcher,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.alertUC == nil {
		return errors.New("alert usecase is required")
	}
	if srv.annUC == nil {
		return errors.New("announcement usecase is required")
	}
	if srv.watcher == nil {
		return errors.New("watcher is required")
	}
	return nil
}
