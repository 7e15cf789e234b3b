// Package account manages the per-user stored-value record and its
// transaction history read path.
package account

import (
	"context"
	"errors"
	"fmt"
	"log"

	"remat/internal/models"
	"remat/internal/repositories"
)

// ErrAccountNotFound is returned when no account exists for a UID.
var ErrAccountNotFound = errors.New("account not found")

// Cache is the subset of the cache service the account read path uses.
type Cache interface {
	GetAccount(ctx context.Context, uid string) (*models.Account, error)
	CacheAccount(ctx context.Context, account *models.Account) error
	InvalidateAccount(ctx context.Context, uid string) error
}

// Service exposes account lifecycle and read operations.
type Service interface {
	// EnsureAccount creates the zero-balance account for a newly
	// authenticated user. Idempotent: an existing account is returned
	// untouched.
	EnsureAccount(ctx context.Context, uid, name string) (*models.Account, error)
	GetAccount(ctx context.Context, uid string) (*models.Account, error)
	// Rename updates the display name counterparties see in transfer
	// records and notifications.
	Rename(ctx context.Context, uid, name string) error
	ListTransactions(ctx context.Context, uid string, limit, offset int) ([]models.TransactionRecord, error)
}

type service struct {
	repo  repositories.AccountRepository
	cache Cache
}

// NewService creates an account service. Cache is optional.
func NewService(repo repositories.AccountRepository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) EnsureAccount(ctx context.Context, uid, name string) (*models.Account, error) {
	if uid == "" {
		return nil, errors.New("uid is required")
	}

	existing, err := s.repo.GetByUID(uid)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	account := &models.Account{UID: uid, Name: name, Balance: 0, Points: 0}
	if err := s.repo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func (s *service) GetAccount(ctx context.Context, uid string) (*models.Account, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAccount(ctx, uid); err == nil {
			return cached, nil
		}
	}

	account, err := s.repo.GetByUID(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheAccount(ctx, account); err != nil {
			log.Printf("failed to cache account %s: %v", uid, err)
		}
	}
	return account, nil
}

func (s *service) Rename(ctx context.Context, uid, name string) error {
	if uid == "" {
		return errors.New("uid is required")
	}
	if name == "" {
		return errors.New("name is required")
	}

	if err := s.repo.UpdateName(uid, name); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to rename account: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAccount(ctx, uid); err != nil {
			log.Printf("failed to invalidate account cache for %s: %v", uid, err)
		}
	}
	return nil
}

func (s *service) ListTransactions(ctx context.Context, uid string, limit, offset int) ([]models.TransactionRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListTransactions(ctx, uid, limit, offset)
}
