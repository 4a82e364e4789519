package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	sharedConfig "vigia/internal/shared/config"
)

// BotService provides Telegram Bot API operations
type BotService struct {
	config     sharedConfig.TelegramConfig
	httpClient *http.Client
	baseURL    string
}

// NewBotService creates a new Telegram bot service
func NewBotService(config sharedConfig.TelegramConfig) *BotService {
	return &BotService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: fmt.Sprintf("https://api.telegram.org/bot%s", config.BotToken),
	}
}

// SetWebhook sets the webhook URL for receiving updates
func (s *BotService) SetWebhook(webhookURL string) error {
	url := fmt.Sprintf("%s/setWebhook", s.baseURL)
	body := map[string]any{
		"url": webhookURL,
	}
	// Include secret_token if configured for webhook verification
	if s.config.WebhookSecret != "" {
		body["secret_token"] = s.config.WebhookSecret
	}

	_, err := s.makeRequest(context.Background(), url, body)
	return err
}

// DeleteWebhook removes the webhook
func (s *BotService) DeleteWebhook() error {
	url := fmt.Sprintf("%s/deleteWebhook", s.baseURL)
	_, err := s.makeRequest(context.Background(), url, nil)
	return err
}

// SendMessage sends a plain text message and returns the sent message id.
func (s *BotService) SendMessage(ctx context.Context, chatID int64, text string) (int64, error) {
	url := fmt.Sprintf("%s/sendMessage", s.baseURL)
	body := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}

	result, err := s.makeRequest(ctx, url, body)
	if err != nil {
		return 0, err
	}

	var sent Message
	if len(result) > 0 {
		if err := json.Unmarshal(result, &sent); err != nil {
			return 0, fmt.Errorf("failed to decode sent message: %w", err)
		}
	}
	return sent.MessageID, nil
}

// SendMessageHTML sends a message with HTML parse mode and returns the sent
// message id.
func (s *BotService) SendMessageHTML(ctx context.Context, chatID int64, text string) (int64, error) {
	url := fmt.Sprintf("%s/sendMessage", s.baseURL)
	body := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}

	result, err := s.makeRequest(ctx, url, body)
	if err != nil {
		return 0, err
	}

	var sent Message
	if len(result) > 0 {
		if err := json.Unmarshal(result, &sent); err != nil {
			return 0, fmt.Errorf("failed to decode sent message: %w", err)
		}
	}
	return sent.MessageID, nil
}

// GetMe verifies the bot token against the API.
func (s *BotService) GetMe(ctx context.Context) (*User, error) {
	url := fmt.Sprintf("%s/getMe", s.baseURL)
	result, err := s.makeRequest(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	var me User
	if err := json.Unmarshal(result, &me); err != nil {
		return nil, fmt.Errorf("failed to decode bot info: %w", err)
	}
	return &me, nil
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

func (s *BotService) makeRequest(ctx context.Context, url string, body map[string]any) (json.RawMessage, error) {
	var req *http.Request
	var err error

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.OK {
		return nil, fmt.Errorf("telegram API error: %s", result.Description)
	}

	return result.Result, nil
}
