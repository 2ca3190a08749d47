package httpserver

import (
	configMongo "mango-alerts-srv/config/mongo"
	"mango-alerts-srv/pkg/errors"
	"mango-alerts-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health, including the store.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := configMongo.HealthCheck(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "MongoDB connection failed", 503))
		return
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "mango-alerts-srv",
		"mongo":   "connected",
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := configMongo.HealthCheck(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "MongoDB connection not available", 503))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "mango-alerts-srv",
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "mango-alerts-srv",
	})
}
