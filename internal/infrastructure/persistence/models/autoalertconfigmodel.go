package models

import "time"

type AutoAlertConfigModel struct {
	ID              uint      `gorm:"primaryKey"`
	Enabled         bool      `gorm:"not null;default:false"`
	IntervalMinutes int       `gorm:"not null;default:3"`
	UpdatedAt       time.Time `gorm:"type:datetime;not null"`
}

func (AutoAlertConfigModel) TableName() string {
	return "auto_alert_configs"
}
