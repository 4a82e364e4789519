package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vigia/internal/application/autoalert/usecases"
	"vigia/internal/shared/errors"
	"vigia/internal/shared/logger"
	"vigia/internal/shared/utils"
)

// ToggleRequest switches automatic generation on or off.
type ToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// UpdateIntervalRequest changes the generation cadence.
type UpdateIntervalRequest struct {
	IntervalMinutes int `json:"interval_minutes" binding:"required"`
}

type AutoAlertHandler struct {
	getStatusUC      usecases.GetStatusExecutor
	toggleUC         usecases.ToggleExecutor
	updateIntervalUC usecases.UpdateIntervalExecutor
	generateNowUC    usecases.GenerateNowExecutor
	logger           logger.Interface
}

func NewAutoAlertHandler(
	getStatusUC usecases.GetStatusExecutor,
	toggleUC usecases.ToggleExecutor,
	updateIntervalUC usecases.UpdateIntervalExecutor,
	generateNowUC usecases.GenerateNowExecutor,
) *AutoAlertHandler {
	return &AutoAlertHandler{
		getStatusUC:      getStatusUC,
		toggleUC:         toggleUC,
		updateIntervalUC: updateIntervalUC,
		generateNowUC:    generateNowUC,
		logger:           logger.NewLogger(),
	}
}

// GetStatus handles GET /api/auto-alerts/status
func (h *AutoAlertHandler) GetStatus(c *gin.Context) {
	status, err := h.getStatusUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}

// Toggle handles POST /api/auto-alerts/toggle
func (h *AutoAlertHandler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for toggle", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	status, err := h.toggleUC.Execute(c.Request.Context(), usecases.ToggleCommand{Enabled: *req.Enabled})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Auto alert generation updated", status)
}

// UpdateInterval handles PATCH /api/auto-alerts/interval
func (h *AutoAlertHandler) UpdateInterval(c *gin.Context) {
	var req UpdateIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update interval", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	status, err := h.updateIntervalUC.Execute(c.Request.Context(), usecases.UpdateIntervalCommand{
		IntervalMinutes: req.IntervalMinutes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Interval updated", status)
}

// GenerateNow handles POST /api/auto-alerts/create-now
func (h *AutoAlertHandler) GenerateNow(c *gin.Context) {
	result, err := h.generateNowUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Alert generated")
}
