package http

import (
	"net/http"

	"mango-alerts-srv/internal/alert"
	pkgErrors "mango-alerts-srv/pkg/errors"
	"mango-alerts-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var errMapping = response.ErrorMapping{
	alert.ErrInvalidProvider: pkgErrors.NewHTTPError(400, "Invalid alert provider", http.StatusBadRequest),
	alert.ErrInvalidEmail:    pkgErrors.NewHTTPError(400, "The entered email is incorrect", http.StatusBadRequest),
	alert.ErrInvalidPhone:    pkgErrors.NewHTTPError(400, "The entered phone number is incorrect", http.StatusBadRequest),
	alert.ErrMissingContact:  pkgErrors.NewHTTPError(400, "Missing alert contact", http.StatusBadRequest),
	alert.ErrInvalidAccount:  pkgErrors.NewHTTPError(400, "Invalid margin account or mango group", http.StatusBadRequest),
	alert.ErrMissingAccount:  pkgErrors.NewHTTPError(400, "Missing margin account", http.StatusBadRequest),
	alert.ErrInvalidID:       pkgErrors.NewHTTPError(400, "Invalid alert id", http.StatusBadRequest),
}

// createAlert handles POST /alerts.
func (h *handler) createAlert(c *gin.Context) {
	ctx := c.Request.Context()

	var req createAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid request body"))
		return
	}

	if _, err := h.uc.Create(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.createAlert: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, gin.H{"status": "success"})
}

// deleteAlert handles POST /delete-alert.
func (h *handler) deleteAlert(c *gin.Context) {
	ctx := c.Request.Context()

	var req deleteAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid request body"))
		return
	}

	if err := h.uc.Delete(ctx, req.ID); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.deleteAlert: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, gin.H{"status": "success"})
}

// listAlerts handles GET /alerts/:mangoAccountPk.
func (h *handler) listAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	alerts, err := h.uc.List(ctx, c.Param("mangoAccountPk"))
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.listAlerts: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, listAlertsResp{Alerts: alerts})
}
