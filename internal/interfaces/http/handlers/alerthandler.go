package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vigia/internal/application/alert/usecases"
	"vigia/internal/shared/errors"
	"vigia/internal/shared/logger"
	"vigia/internal/shared/utils"
)

// CreateAlertRequest carries the alert description plus the optional
// equipment descriptor fields.
type CreateAlertRequest struct {
	Description   string     `json:"description" binding:"required"`
	Code          string     `json:"code"`
	Unit          string     `json:"unit"`
	Front         string     `json:"front"`
	Equipment     string     `json:"equipment"`
	EquipmentCode string     `json:"equipment_code"`
	OperationType string     `json:"operation_type"`
	Operation     string     `json:"operation"`
	OperatorName  string     `json:"operator_name"`
	OperationDate *time.Time `json:"operation_date"`
	OpenDuration  string     `json:"open_duration"`
	TreeType      string     `json:"tree_type"`
}

func (r *CreateAlertRequest) ToCommand() usecases.CreateAlertCommand {
	return usecases.CreateAlertCommand{
		Description:   r.Description,
		Code:          r.Code,
		Unit:          r.Unit,
		Front:         r.Front,
		Equipment:     r.Equipment,
		EquipmentCode: r.EquipmentCode,
		OperationType: r.OperationType,
		Operation:     r.Operation,
		OperatorName:  r.OperatorName,
		OperationDate: r.OperationDate,
		OpenDuration:  r.OpenDuration,
		TreeType:      r.TreeType,
	}
}

// SetOperatingStatusRequest updates the operating flag of an alert.
type SetOperatingStatusRequest struct {
	Status        string  `json:"operating_status" binding:"required"`
	Justification *string `json:"justification"`
}

type AlertHandler struct {
	createAlertUC   usecases.CreateAlertExecutor
	listAlertsUC    usecases.ListAlertsExecutor
	setOperatingUC  usecases.SetOperatingStatusExecutor
	getStatsUC      usecases.GetStatsExecutor
	getLastUpdateUC usecases.GetLastUpdateExecutor
	purgeAlertsUC   usecases.PurgeAlertsExecutor
	logger          logger.Interface
}

func NewAlertHandler(
	createAlertUC usecases.CreateAlertExecutor,
	listAlertsUC usecases.ListAlertsExecutor,
	setOperatingUC usecases.SetOperatingStatusExecutor,
	getStatsUC usecases.GetStatsExecutor,
	getLastUpdateUC usecases.GetLastUpdateExecutor,
	purgeAlertsUC usecases.PurgeAlertsExecutor,
) *AlertHandler {
	return &AlertHandler{
		createAlertUC:   createAlertUC,
		listAlertsUC:    listAlertsUC,
		setOperatingUC:  setOperatingUC,
		getStatsUC:      getStatsUC,
		getLastUpdateUC: getLastUpdateUC,
		purgeAlertsUC:   purgeAlertsUC,
		logger:          logger.NewLogger(),
	}
}

// CreateAlert handles POST /api/alerts
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create alert", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createAlertUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Alert created successfully")
}

// ListAlerts handles GET /api/alerts
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	board, err := h.listAlertsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", board)
}

// SetOperatingStatus handles PATCH /api/alerts/:id/status
func (h *AlertHandler) SetOperatingStatus(c *gin.Context) {
	alertID, err := parseAlertID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetOperatingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set operating status", "alert_id", alertID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.SetOperatingStatusCommand{
		AlertID:       alertID,
		Status:        req.Status,
		Justification: req.Justification,
	}

	result, err := h.setOperatingUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Operating status updated", result)
}

// GetStats handles GET /api/alerts/stats
func (h *AlertHandler) GetStats(c *gin.Context) {
	stats, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// GetLastUpdate handles GET /api/alerts/last-update
func (h *AlertHandler) GetLastUpdate(c *gin.Context) {
	result, err := h.getLastUpdateUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PurgeAlerts handles DELETE /api/alerts
func (h *AlertHandler) PurgeAlerts(c *gin.Context) {
	result, err := h.purgeAlertsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alerts purged", result)
}

func parseAlertID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid alert id", idStr)
	}
	return uint(id), nil
}
