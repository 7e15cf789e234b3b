package repositories

import (
	"context"

	"remat/internal/models"
)

// AccountRepository is the data access contract for accounts and their
// append-only transaction/notification logs.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByUID(uid string) (*models.Account, error)
	// GetByUIDForUpdate reads the account under a row lock. Only valid
	// inside ExecuteInTransaction.
	GetByUIDForUpdate(uid string) (*models.Account, error)
	// UpdateBalanceAndPoints persists new balance/points with a
	// compare-and-swap on the account version. Returns ErrVersionConflict
	// if a concurrent writer got there first.
	UpdateBalanceAndPoints(account *models.Account) error
	// UpdateName sets the display name shown to counterparties. Returns
	// ErrAccountNotFound when no account exists for the UID.
	UpdateName(uid, name string) error

	CreateTransaction(record *models.TransactionRecord) error
	ListTransactions(ctx context.Context, uid string, limit, offset int) ([]models.TransactionRecord, error)

	CreateNotification(record *models.NotificationRecord) error
	ListNotifications(ctx context.Context, uid string, limit, offset int) ([]models.NotificationRecord, error)
	MarkNotificationRead(uid string, id uint) error
	MarkAllNotificationsRead(uid string) error

	// ExecuteInTransaction runs fn against a repository bound to a single
	// database transaction. Any error rolls back every write.
	ExecuteInTransaction(fn func(AccountRepository) error) error
}
