// Package notification exposes the per-user message outbox: listing and
// read-state toggling. Ledger and charge operations append entries
// themselves, inside their own transactions.
package notification

import (
	"context"
	"errors"

	"remat/internal/models"
	"remat/internal/repositories"
)

// ErrNotFound is returned when a notification does not exist or belongs
// to another account.
var ErrNotFound = errors.New("notification not found")

// Service reads and mutates the notification outbox.
type Service interface {
	List(ctx context.Context, uid string, limit, offset int) ([]models.NotificationRecord, error)
	MarkRead(ctx context.Context, uid string, id uint) error
	MarkAllRead(ctx context.Context, uid string) error
}

type service struct {
	repo repositories.AccountRepository
}

func NewService(repo repositories.AccountRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, uid string, limit, offset int) ([]models.NotificationRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListNotifications(ctx, uid, limit, offset)
}

func (s *service) MarkRead(ctx context.Context, uid string, id uint) error {
	err := s.repo.MarkNotificationRead(uid, id)
	if errors.Is(err, repositories.ErrNotificationNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *service) MarkAllRead(ctx context.Context, uid string) error {
	return s.repo.MarkAllNotificationsRead(uid)
}
