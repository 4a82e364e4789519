package dto

import (
	"time"

	"vigia/internal/domain/reply"
)

type ReplyDTO struct {
	ID         uint      `json:"id"`
	ChatID     int64     `json:"chat_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Text       string    `json:"text"`
	Outcome    string    `json:"outcome"`
	AlertID    *uint     `json:"alert_id,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

func NewReplyDTO(r *reply.Reply) ReplyDTO {
	return ReplyDTO{
		ID:         r.ID(),
		ChatID:     r.ChatID(),
		SenderName: r.SenderName(),
		Text:       r.Text(),
		Outcome:    string(r.Outcome()),
		AlertID:    r.AlertID(),
		ReceivedAt: r.ReceivedAt(),
	}
}

func NewReplyDTOs(replies []*reply.Reply) []ReplyDTO {
	out := make([]ReplyDTO, 0, len(replies))
	for _, r := range replies {
		out = append(out, NewReplyDTO(r))
	}
	return out
}
