package httpserver

import (
	alertHTTP "mango-alerts-srv/internal/alert/delivery/http"
	announcementHTTP "mango-alerts-srv/internal/announcement/delivery/http"
	"mango-alerts-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Public API routes
	alertHTTP.New(srv.logger, srv.alertUC).MapRoutes(srv.gin)
	announcementHTTP.New(srv.logger, srv.annUC).MapRoutes(srv.gin)
}
