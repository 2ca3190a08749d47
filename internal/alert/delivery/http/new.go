package http

import (
	"mango-alerts-srv/internal/alert"
	pkgLog "mango-alerts-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc alert.UseCase
}

// New creates the alert HTTP handler.
func New(l pkgLog.Logger, uc alert.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// MapRoutes registers the alert endpoints. The paths follow the public
// API the web client already uses.
func (h *handler) MapRoutes(r *gin.Engine) {
	r.POST("/alerts", h.createAlert)
	r.POST("/delete-alert", h.deleteAlert)
	r.GET("/alerts/:mangoAccountPk", h.listAlerts)
}
