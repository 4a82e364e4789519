package dto

import (
	"time"

	"vigia/internal/domain/alert"
)

// AlertDTO is the wire representation of a single alert. Timestamps are
// rendered in the civil timezone with an explicit offset.
type AlertDTO struct {
	ID              uint       `json:"id"`
	Recipient       string     `json:"recipient"`
	Description     string     `json:"description"`
	MessageID       *int64     `json:"message_id,omitempty"`
	ETAText         string     `json:"eta_text,omitempty"`
	ETAAt           *time.Time `json:"eta_at,omitempty"`
	OperatingStatus string     `json:"operating_status"`
	Bucket          string     `json:"bucket"`
	ResponsibleName string     `json:"responsible_name,omitempty"`
	Justification   string     `json:"justification,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	AnsweredAt      *time.Time `json:"answered_at,omitempty"`
	OperatingSince  *time.Time `json:"operating_since,omitempty"`
	ClosedFrom      string     `json:"closed_from,omitempty"`

	Code          string     `json:"code,omitempty"`
	Unit          string     `json:"unit,omitempty"`
	Front         string     `json:"front,omitempty"`
	Equipment     string     `json:"equipment,omitempty"`
	EquipmentCode string     `json:"equipment_code,omitempty"`
	OperationType string     `json:"operation_type,omitempty"`
	Operation     string     `json:"operation,omitempty"`
	OperatorName  string     `json:"operator_name,omitempty"`
	OperationDate *time.Time `json:"operation_date,omitempty"`
	OpenDuration  string     `json:"open_duration,omitempty"`
	TreeType      string     `json:"tree_type,omitempty"`
}

// BoardDTO groups alerts by display bucket, newest first in each list.
type BoardDTO struct {
	Pending   []AlertDTO `json:"pending"`
	Escalated []AlertDTO `json:"escalated"`
	Overdue   []AlertDTO `json:"overdue"`
	Closed    []AlertDTO `json:"closed"`
	Total     int        `json:"total"`
	Now       time.Time  `json:"now"`
}

// StatsDTO summarizes the board for dashboards.
type StatsDTO struct {
	Total      int64     `json:"total"`
	Answered   int64     `json:"answered"`
	Unanswered int64     `json:"unanswered"`
	Pending    int       `json:"pending"`
	Escalated  int       `json:"escalated"`
	Overdue    int       `json:"overdue"`
	Closed     int       `json:"closed"`
	Now        time.Time `json:"now"`
}

func NewAlertDTO(a *alert.Alert, now time.Time) AlertDTO {
	d := a.Descriptor()
	out := AlertDTO{
		ID:              a.ID(),
		Recipient:       a.Recipient(),
		Description:     a.Description(),
		MessageID:       a.MessageID(),
		ETAText:         a.ETAText(),
		ETAAt:           a.ETAAt(),
		OperatingStatus: string(a.OperatingStatus()),
		Bucket:          string(a.Bucket(now)),
		ResponsibleName: a.ResponsibleName(),
		Justification:   a.Justification(),
		CreatedAt:       a.CreatedAt(),
		AnsweredAt:      a.AnsweredAt(),
		OperatingSince:  a.OperatingSince(),
		Code:            d.Code,
		Unit:            d.Unit,
		Front:           d.Front,
		Equipment:       d.Equipment,
		EquipmentCode:   d.EquipmentCode,
		OperationType:   d.OperationType,
		Operation:       d.Operation,
		OperatorName:    d.OperatorName,
		OperationDate:   d.OperationDate,
		OpenDuration:    d.OpenDuration,
		TreeType:        d.TreeType,
	}
	if from := a.ClosedFrom(); from != nil {
		out.ClosedFrom = string(*from)
	}
	return out
}

func NewBoardDTO(board alert.Board, now time.Time) BoardDTO {
	return BoardDTO{
		Pending:   toDTOs(board.Pending, now),
		Escalated: toDTOs(board.Escalated, now),
		Overdue:   toDTOs(board.Overdue, now),
		Closed:    toDTOs(board.Closed, now),
		Total:     board.Total(),
		Now:       now,
	}
}

func toDTOs(alerts []*alert.Alert, now time.Time) []AlertDTO {
	out := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, NewAlertDTO(a, now))
	}
	return out
}
