package reply

import (
	"fmt"
	"time"
)

// Outcome describes how an inbound chat message was handled.
type Outcome string

const (
	// OutcomeAccepted means the message carried a valid deadline and an
	// alert was waiting for it.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeInvalidFormat means the message did not read as HH:MM.
	OutcomeInvalidFormat Outcome = "invalid_format"
	// OutcomeNoPending means the message was valid but no alert was
	// waiting for a deadline.
	OutcomeNoPending Outcome = "no_pending"
	// OutcomeUnauthorized means the sender's chat is not on the allow list.
	OutcomeUnauthorized Outcome = "unauthorized"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeAccepted, OutcomeInvalidFormat, OutcomeNoPending, OutcomeUnauthorized:
		return true
	}
	return false
}

// Reply is a journal entry for one inbound chat message. Entries are
// append-only and kept for operational audit regardless of outcome.
type Reply struct {
	id         uint
	chatID     int64
	senderName string
	text       string
	outcome    Outcome
	alertID    *uint
	receivedAt time.Time
}

func NewReply(chatID int64, senderName, text string, outcome Outcome, alertID *uint, receivedAt time.Time) (*Reply, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat ID is required")
	}
	if !outcome.IsValid() {
		return nil, fmt.Errorf("invalid reply outcome: %s", outcome)
	}
	if receivedAt.IsZero() {
		return nil, fmt.Errorf("received time is required")
	}

	return &Reply{
		chatID:     chatID,
		senderName: senderName,
		text:       text,
		outcome:    outcome,
		alertID:    alertID,
		receivedAt: receivedAt,
	}, nil
}

func ReconstructReply(id uint, chatID int64, senderName, text string, outcome Outcome, alertID *uint, receivedAt time.Time) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}
	if !outcome.IsValid() {
		return nil, fmt.Errorf("invalid reply outcome: %s", outcome)
	}

	return &Reply{
		id:         id,
		chatID:     chatID,
		senderName: senderName,
		text:       text,
		outcome:    outcome,
		alertID:    alertID,
		receivedAt: receivedAt,
	}, nil
}

func (r *Reply) ID() uint              { return r.id }
func (r *Reply) ChatID() int64         { return r.chatID }
func (r *Reply) SenderName() string    { return r.senderName }
func (r *Reply) Text() string          { return r.text }
func (r *Reply) Outcome() Outcome      { return r.outcome }
func (r *Reply) AlertID() *uint        { return r.alertID }
func (r *Reply) ReceivedAt() time.Time { return r.receivedAt }

func (r *Reply) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reply ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reply ID cannot be zero")
	}
	r.id = id
	return nil
}
