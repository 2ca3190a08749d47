package http

import (
	"net/http"
	"time"

	"mango-alerts-srv/internal/announcement"
	pkgErrors "mango-alerts-srv/pkg/errors"
	"mango-alerts-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var errMapping = response.ErrorMapping{
	// The original surface reported a secret mismatch as a plain 400.
	announcement.ErrInvalidSecret:  pkgErrors.NewHTTPError(400, "Invalid update password", http.StatusBadRequest),
	announcement.ErrInvalidID:      pkgErrors.NewHTTPError(400, "Invalid update id", http.StatusBadRequest),
	announcement.ErrMissingContent: pkgErrors.NewHTTPError(400, "Missing update content", http.StatusBadRequest),
}

type createUpdateReq struct {
	Content    string     `json:"content"`
	ExpiryDate *time.Time `json:"expiryDate"`
	Password   string     `json:"password"`
}

type deleteUpdateReq struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type updateSeenReq struct {
	ID   string `json:"id"`
	Seen *bool  `json:"seen"`
}

type clearUpdatesReq struct {
	IDs []string `json:"ids"`
}

// createUpdate handles POST /updates.
func (h *handler) createUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	var req createUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid request body"))
		return
	}

	input := announcement.CreateInput{
		Content:    req.Content,
		ExpiryDate: req.ExpiryDate,
	}
	if _, err := h.uc.Create(ctx, req.Password, input); err != nil {
		h.l.Warnf(ctx, "internal.announcement.delivery.http.createUpdate: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, gin.H{"status": "success"})
}

// listUpdates handles GET /get-updates.
func (h *handler) listUpdates(c *gin.Context) {
	ctx := c.Request.Context()

	anns, err := h.uc.List(ctx)
	if err != nil {
		h.l.Warnf(ctx, "internal.announcement.delivery.http.listUpdates: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, gin.H{"updates": anns})
}

// deleteUpdate handles POST /delete-update.
func (h *handler) deleteUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	var req deleteUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid request body"))
		return
	}

	if err := h.uc.Delete(ctx, req.Password, req.ID); err != nil {
		h.l.Warnf(ctx, "internal.announcement.delivery.http.deleteUpdate: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, gin.H{"status": "success"})
}

// updateSeen handles POST /update-seen.
func (h *handler) updateSeen(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateSeenReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Seen == nil {
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid request body"))
		return
	}

	if err := h.uc.SetSeen(ctx, req.ID, *req.Seen); err != nil {
		h.l.Warnf(ctx, "internal.announcement.delivery.http.updateSeen: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, gin.H{"status": "success"})
}

// clearUpdates handles POST /clear-updates.
func (h *handler) clearUpdates(c *gin.Context) {
	ctx := c.Request.Context()

	var req clearUpdatesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid request body"))
		return
	}

	if err := h.uc.Clear(ctx, req.IDs); err != nil {
		h.l.Warnf(ctx, "internal.announcement.delivery.http.clearUpdates: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, gin.H{"status": "success"})
}
