package models

import "time"

type ReplyModel struct {
	ID         uint      `gorm:"primaryKey"`
	ChatID     int64     `gorm:"not null;index"`
	SenderName string    `gorm:"size:120"`
	Text       string    `gorm:"type:text"`
	Outcome    string    `gorm:"size:20;not null;index"`
	AlertID    *uint     `gorm:"index"`
	ReceivedAt time.Time `gorm:"type:datetime;not null;index"`
}

func (ReplyModel) TableName() string {
	return "replies"
}
