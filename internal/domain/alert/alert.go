package alert

import (
	"fmt"
	"time"

	vo "vigia/internal/domain/alert/valueobjects"
)

// Descriptor carries the optional equipment details attached to an alert at
// creation time. All fields are free-form display data.
type Descriptor struct {
	Code          string
	Unit          string
	Front         string
	Equipment     string
	EquipmentCode string
	OperationType string
	Operation     string
	OperatorName  string
	OperationDate *time.Time
	OpenDuration  string
	TreeType      string
}

// Alert is the sole aggregate of the lifecycle engine. It starts without a
// deadline, receives one from the responsible leader's chat reply, and is
// closed by the operator flipping the operating flag. Its display bucket is
// never stored; it is derived from these fields and wall-clock time.
type Alert struct {
	id              uint
	recipient       string
	description     string
	messageID       *int64
	etaText         string
	etaAt           *time.Time
	operatingStatus vo.OperatingStatus
	responsibleName string
	justification   string
	descriptor      Descriptor
	createdAt       time.Time
	answeredAt      *time.Time
	operatingSince  *time.Time
	closedFrom      *vo.Bucket
}

func NewAlert(description, recipient, responsibleName string, descriptor Descriptor, createdAt time.Time) (*Alert, error) {
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if len(recipient) == 0 {
		return nil, fmt.Errorf("recipient is required")
	}
	if createdAt.IsZero() {
		return nil, fmt.Errorf("creation time is required")
	}

	return &Alert{
		recipient:       recipient,
		description:     description,
		operatingStatus: vo.StatusNotOperating,
		responsibleName: responsibleName,
		descriptor:      descriptor,
		createdAt:       createdAt,
	}, nil
}

func ReconstructAlert(
	id uint,
	recipient string,
	description string,
	messageID *int64,
	etaText string,
	etaAt *time.Time,
	operatingStatus vo.OperatingStatus,
	responsibleName string,
	justification string,
	descriptor Descriptor,
	createdAt time.Time,
	answeredAt *time.Time,
	operatingSince *time.Time,
	closedFrom *vo.Bucket,
) (*Alert, error) {
	if id == 0 {
		return nil, fmt.Errorf("alert ID cannot be zero")
	}
	if !operatingStatus.IsValid() {
		return nil, fmt.Errorf("invalid operating status")
	}
	if (etaText == "") != (etaAt == nil) {
		return nil, fmt.Errorf("eta text and eta instant must be set together")
	}
	if closedFrom != nil && !closedFrom.IsValid() {
		return nil, fmt.Errorf("invalid closed-from bucket")
	}

	return &Alert{
		id:              id,
		recipient:       recipient,
		description:     description,
		messageID:       messageID,
		etaText:         etaText,
		etaAt:           etaAt,
		operatingStatus: operatingStatus,
		responsibleName: responsibleName,
		justification:   justification,
		descriptor:      descriptor,
		createdAt:       createdAt,
		answeredAt:      answeredAt,
		operatingSince:  operatingSince,
		closedFrom:      closedFrom,
	}, nil
}

func (a *Alert) ID() uint {
	return a.id
}

func (a *Alert) Recipient() string {
	return a.recipient
}

func (a *Alert) Description() string {
	return a.description
}

func (a *Alert) MessageID() *int64 {
	return a.messageID
}

func (a *Alert) ETAText() string {
	return a.etaText
}

func (a *Alert) ETAAt() *time.Time {
	return a.etaAt
}

func (a *Alert) OperatingStatus() vo.OperatingStatus {
	return a.operatingStatus
}

func (a *Alert) ResponsibleName() string {
	return a.responsibleName
}

func (a *Alert) Justification() string {
	return a.justification
}

func (a *Alert) Descriptor() Descriptor {
	return a.descriptor
}

func (a *Alert) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Alert) AnsweredAt() *time.Time {
	return a.answeredAt
}

func (a *Alert) OperatingSince() *time.Time {
	return a.operatingSince
}

func (a *Alert) ClosedFrom() *vo.Bucket {
	return a.closedFrom
}

func (a *Alert) HasETA() bool {
	return a.etaAt != nil
}

func (a *Alert) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("alert ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("alert ID cannot be zero")
	}
	a.id = id
	return nil
}

// SetMessageID records the Telegram message id of the outbound ETA prompt.
func (a *Alert) SetMessageID(messageID int64) {
	a.messageID = &messageID
}

// SetJustification records the operator's free-form closing note.
func (a *Alert) SetJustification(text string) {
	a.justification = text
}

// AnswerETA records the leader's deadline reply. It can succeed at most once
// per alert; answeredAt is stamped the first time and never changes.
func (a *Alert) AnswerETA(text string, etaAt time.Time, responsibleName string, answeredAt time.Time) error {
	if a.etaAt != nil {
		return fmt.Errorf("alert already has a deadline")
	}
	if text == "" {
		return fmt.Errorf("eta text cannot be empty")
	}
	if etaAt.IsZero() {
		return fmt.Errorf("eta instant cannot be zero")
	}

	a.etaText = text
	a.etaAt = &etaAt
	a.answeredAt = &answeredAt
	if responsibleName != "" {
		a.responsibleName = responsibleName
	}
	return nil
}

// SetOperatingStatus flips the operating flag. The first transition into
// "operating" stamps operatingSince and records which bucket the alert
// occupied immediately before closing; later toggles never re-stamp either
// field, and flipping back to "not_operating" never clears them.
func (a *Alert) SetOperatingStatus(newStatus vo.OperatingStatus, now time.Time) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid operating status: %s", newStatus)
	}

	firstStart := newStatus.IsOperating() && a.operatingSince == nil
	a.operatingStatus = newStatus

	if firstStart {
		a.operatingSince = &now
		// A never-answered alert closes without a prior escalated/overdue
		// state, so closedFrom stays null.
		if a.etaAt != nil {
			from := vo.BucketOverdue
			if !a.etaAt.Before(now) {
				from = vo.BucketEscalated
			}
			a.closedFrom = &from
		}
	}
	return nil
}

// Bucket derives the display category for this alert at the given instant.
// Rule order: no deadline wins, then the operating flag, then the deadline
// comparison (a deadline exactly at now is still escalated).
func (a *Alert) Bucket(now time.Time) vo.Bucket {
	if a.etaAt == nil {
		return vo.BucketPending
	}
	if a.operatingStatus.IsOperating() {
		return vo.BucketClosed
	}
	if !a.etaAt.Before(now) {
		return vo.BucketEscalated
	}
	return vo.BucketOverdue
}
