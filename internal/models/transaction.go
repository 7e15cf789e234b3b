package models

import (
	"time"
)

// Transaction record types
const (
	TransactionTypePayment = "payment"
	TransactionTypeReceive = "receive"
	TransactionTypeCharge  = "charge"
)

// TransactionRecord is an immutable history entry in one account's log.
// A transfer writes a pair of them: -amount/payment on the sender side,
// +amount/receive on the receiver side, linked by a shared Reference.
type TransactionRecord struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	AccountUID      string    `gorm:"not null;index;size:64" json:"account_uid"`
	Amount          int64     `gorm:"not null" json:"amount"`
	Counterparty    string    `json:"counterparty"`
	CounterpartyUID string    `gorm:"size:64" json:"counterparty_uid,omitempty"`
	Type            string    `gorm:"not null" json:"type"`
	Reference       string    `gorm:"index" json:"reference,omitempty"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}
