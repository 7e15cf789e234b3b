package repositories

import (
	"context"
	"errors"
	"fmt"

	"remat/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByUID(uid string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("uid = ?", uid).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByUIDForUpdate(uid string) (*models.Account, error) {
	var account models.Account
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("uid = ?", uid).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) UpdateBalanceAndPoints(account *models.Account) error {
	result := r.db.Model(&models.Account{}).
		Where("uid = ? AND version = ?", account.UID, account.Version).
		Updates(map[string]interface{}{
			"balance": account.Balance,
			"points":  account.Points,
			"version": account.Version + 1,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	account.Version++
	return nil
}

func (r *accountRepository) UpdateName(uid, name string) error {
	result := r.db.Model(&models.Account{}).
		Where("uid = ?", uid).
		Update("name", name)
	if result.Error != nil {
		return fmt.Errorf("failed to update account name: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) CreateTransaction(record *models.TransactionRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create transaction record: %w", err)
	}
	return nil
}

func (r *accountRepository) ListTransactions(ctx context.Context, uid string, limit, offset int) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	// Ordering by created_at, not insertion order: auto IDs are not a
	// chronological key.
	err := r.db.WithContext(ctx).
		Where("account_uid = ?", uid).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return records, nil
}

func (r *accountRepository) CreateNotification(record *models.NotificationRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *accountRepository) ListNotifications(ctx context.Context, uid string, limit, offset int) ([]models.NotificationRecord, error) {
	var records []models.NotificationRecord
	err := r.db.WithContext(ctx).
		Where("account_uid = ?", uid).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return records, nil
}

func (r *accountRepository) MarkNotificationRead(uid string, id uint) error {
	result := r.db.Model(&models.NotificationRecord{}).
		Where("id = ? AND account_uid = ?", id, uid).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *accountRepository) MarkAllNotificationsRead(uid string) error {
	err := r.db.Model(&models.NotificationRecord{}).
		Where("account_uid = ? AND read = ?", uid, false).
		Update("read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *accountRepository) ExecuteInTransaction(fn func(AccountRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&accountRepository{db: tx})
	})
}
