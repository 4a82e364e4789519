package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vigia/internal/application/reply/usecases"
	"vigia/internal/shared/errors"
	"vigia/internal/shared/logger"
	"vigia/internal/shared/utils"
)

type ReplyHandler struct {
	listRepliesUC usecases.ListRepliesExecutor
	logger        logger.Interface
}

func NewReplyHandler(listRepliesUC usecases.ListRepliesExecutor) *ReplyHandler {
	return &ReplyHandler{
		listRepliesUC: listRepliesUC,
		logger:        logger.NewLogger(),
	}
}

// ListReplies handles GET /api/replies
func (h *ReplyHandler) ListReplies(c *gin.Context) {
	query := usecases.ListRepliesQuery{}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid limit", limitStr))
			return
		}
		query.Limit = limit
	}

	replies, err := h.listRepliesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", replies)
}
