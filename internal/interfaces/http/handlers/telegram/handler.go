// Package telegram exposes the webhook endpoint the Telegram Bot API posts
// updates to.
package telegram

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"vigia/internal/application/alert/usecases"
	telegramInfra "vigia/internal/infrastructure/telegram"
	"vigia/internal/shared/logger"
	"vigia/internal/shared/utils"
)

// Handler handles inbound Telegram webhook updates
type Handler struct {
	handleReplyUC usecases.HandleReplyExecutor
	webhookSecret string
	logger        logger.Interface
}

// NewHandler creates a new telegram webhook handler
func NewHandler(handleReplyUC usecases.HandleReplyExecutor, webhookSecret string, log logger.Interface) *Handler {
	return &Handler{
		handleReplyUC: handleReplyUC,
		webhookSecret: webhookSecret,
		logger:        log,
	}
}

// HandleWebhook handles POST /api/telegram/webhook.
//
// Telegram retries any non-2xx response, so processing failures after the
// update is accepted are logged and acked with 200.
func (h *Handler) HandleWebhook(c *gin.Context) {
	if h.webhookSecret != "" {
		secretHeader := c.GetHeader("X-Telegram-Bot-Api-Secret-Token")
		// Constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(secretHeader), []byte(h.webhookSecret)) != 1 {
			h.logger.Warnw("webhook secret verification failed",
				"received_secret_empty", secretHeader == "")
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid webhook secret")
			return
		}
	}

	var update telegramInfra.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.logger.Errorw("failed to parse webhook update", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil || strings.TrimSpace(msg.Text) == "" {
		// Edited messages, stickers, joins and other noise
		utils.SuccessResponse(c, http.StatusOK, "ignored", nil)
		return
	}

	cmd := usecases.HandleReplyCommand{
		ChatID:     msg.Chat.ID,
		SenderName: msg.SenderName(),
		Text:       msg.Text,
		SentAt:     time.Unix(msg.Date, 0),
	}

	result, err := h.handleReplyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to handle telegram reply",
			"chat_id", cmd.ChatID,
			"error", err)
		utils.SuccessResponse(c, http.StatusOK, "processed", nil)
		return
	}

	h.logger.Infow("telegram reply handled",
		"chat_id", cmd.ChatID,
		"outcome", result.Outcome)

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"outcome": result.Outcome})
}
