package models

import (
	"time"
)

// Account is the per-user stored-value record: balance plus loyalty points.
// Amounts are whole currency units, never fractional.
type Account struct {
	UID       string    `gorm:"primarykey;size:64" json:"uid"`
	Balance   int64     `gorm:"not null;default:0" json:"balance"`
	Points    int64     `gorm:"not null;default:0" json:"points"`
	Name      string    `json:"name"`
	Version   int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName resolves the name shown to counterparties: the stored name,
// then the caller-supplied fallback, then a sentinel.
func (a *Account) DisplayName(fallback string) string {
	if a.Name != "" {
		return a.Name
	}
	if fallback != "" {
		return fallback
	}
	return "unknown user"
}
