package models

import "time"

// AlertModel persists alerts with wall-clock DATETIME columns. The stored
// values carry no offset; they are civil times and get reinterpreted by the
// mapper on the way out.
type AlertModel struct {
	ID              uint       `gorm:"primaryKey"`
	Recipient       string     `gorm:"size:64;not null;index"`
	Description     string     `gorm:"type:text;not null"`
	MessageID       *int64     `gorm:"index"`
	ETAText         string     `gorm:"column:eta_text;size:8"`
	ETAAt           *time.Time `gorm:"column:eta_at;type:datetime;index"`
	OperatingStatus string     `gorm:"size:20;not null;index"`
	ResponsibleName string     `gorm:"size:120"`
	Justification   string     `gorm:"type:text"`
	Code            string     `gorm:"size:64"`
	Unit            string     `gorm:"size:64"`
	Front           string     `gorm:"size:64"`
	Equipment       string     `gorm:"size:120"`
	EquipmentCode   string     `gorm:"size:64"`
	OperationType   string     `gorm:"size:64"`
	Operation       string     `gorm:"size:120"`
	OperatorName    string     `gorm:"size:120"`
	OperationDate   *time.Time `gorm:"type:datetime"`
	OpenDuration    string     `gorm:"size:32"`
	TreeType        string     `gorm:"size:64"`
	CreatedAt       time.Time  `gorm:"type:datetime;not null;index"`
	AnsweredAt      *time.Time `gorm:"type:datetime"`
	OperatingSince  *time.Time `gorm:"type:datetime"`
	ClosedFrom      string     `gorm:"size:20"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (AlertModel) TableName() string {
	return "alerts"
}
