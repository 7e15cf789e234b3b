package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the authentication record. Each user owns exactly one Account,
// keyed by the same UID, created with zero balance on registration.
type User struct {
	UID       string `gorm:"primarykey;size:64"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null" json:"-"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
