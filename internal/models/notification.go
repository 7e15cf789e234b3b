package models

import (
	"time"
)

// Notification types
const (
	NotificationTypeInfo = "info"
)

// NotificationRecord is a user-facing message appended to an account's
// outbox. Ledger operations create them unread; only the mark-read path
// mutates them afterwards.
type NotificationRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	AccountUID string    `gorm:"not null;index;size:64" json:"account_uid"`
	Text       string    `gorm:"not null" json:"text"`
	Read       bool      `gorm:"not null;default:false" json:"read"`
	Type       string    `gorm:"not null;default:'info'" json:"type"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
