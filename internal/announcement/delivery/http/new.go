package http

import (
	"mango-alerts-srv/internal/announcement"
	pkgLog "mango-alerts-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc announcement.UseCase
}

// New creates the announcement HTTP handler.
func New(l pkgLog.Logger, uc announcement.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// MapRoutes registers the update endpoints.
func (h *handler) MapRoutes(r *gin.Engine) {
	r.POST("/updates", h.createUpdate)
	r.GET("/get-updates", h.listUpdates)
	r.POST("/delete-update", h.deleteUpdate)
	r.POST("/update-seen", h.updateSeen)
	r.POST("/clear-updates", h.clearUpdates)
}
