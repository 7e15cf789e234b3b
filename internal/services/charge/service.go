// Package charge implements the top-up flow: capture a card payment and
// credit the stored-value balance.
package charge

import (
	"context"
	"errors"
	"fmt"
	"log"

	"remat/internal/models"
	"remat/internal/repositories"
)

// Service errors
var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrUnauthenticated = errors.New("authentication required")
	ErrAccountNotFound = errors.New("account not found")
	ErrPaymentDeclined = errors.New("payment declined")
)

const maxRetries = 3

// ChargeInput is a validated top-up request.
type ChargeInput struct {
	Amount int64  `json:"amount"`
	Source string `json:"source"` // card token from the client SDK
}

// ChargeResult reports a committed top-up.
type ChargeResult struct {
	NewBalance int64  `json:"new_balance"`
	PaymentID  string `json:"payment_id"`
}

// PaymentProvider captures the card payment backing a charge. The
// production implementation wraps Stripe.
type PaymentProvider interface {
	Capture(ctx context.Context, amount int64, source, description string) (paymentID string, err error)
}

// AccountCache invalidates cached account snapshots after a commit.
type AccountCache interface {
	InvalidateAccount(ctx context.Context, uid string) error
}

// Service tops up an account balance.
type Service interface {
	Charge(ctx context.Context, callerUID string, input ChargeInput) (*ChargeResult, error)
}

type service struct {
	repo     repositories.AccountRepository
	provider PaymentProvider
	cache    AccountCache
}

// NewService creates a charge service. Cache is optional.
func NewService(repo repositories.AccountRepository, provider PaymentProvider, cache AccountCache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if provider == nil {
		panic("payment provider is required")
	}
	return &service{repo: repo, provider: provider, cache: cache}
}

// Charge captures the card payment first, then credits the balance and
// appends the charge record and notification in one transaction. Charges
// race with transfers on the same account, so the credit uses the same
// version-checked write discipline as the ledger engine.
func (s *service) Charge(ctx context.Context, callerUID string, input ChargeInput) (*ChargeResult, error) {
	if callerUID == "" {
		return nil, ErrUnauthenticated
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	paymentID, err := s.provider.Capture(ctx, input.Amount, input.Source, fmt.Sprintf("balance charge for %s", callerUID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}

	var newBalance int64
	for attempt := 0; ; attempt++ {
		newBalance, err = s.credit(callerUID, input.Amount)
		if err == nil {
			break
		}
		if errors.Is(err, repositories.ErrVersionConflict) && attempt < maxRetries {
			continue
		}
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		// The card was already captured; this needs operator attention.
		log.Printf("charge: credit failed after capture %s for %s: %v", paymentID, callerUID, err)
		return nil, fmt.Errorf("failed to credit balance: %w", err)
	}

	if s.cache != nil {
		if cerr := s.cache.InvalidateAccount(ctx, callerUID); cerr != nil {
			log.Printf("failed to invalidate account cache for %s: %v", callerUID, cerr)
		}
	}

	return &ChargeResult{NewBalance: newBalance, PaymentID: paymentID}, nil
}

func (s *service) credit(uid string, amount int64) (int64, error) {
	var newBalance int64
	err := s.repo.ExecuteInTransaction(func(tx repositories.AccountRepository) error {
		account, err := tx.GetByUIDForUpdate(uid)
		if err != nil {
			return err
		}

		account.Balance += amount
		if err := tx.UpdateBalanceAndPoints(account); err != nil {
			return err
		}

		if err := tx.CreateTransaction(&models.TransactionRecord{
			AccountUID:   uid,
			Amount:       amount,
			Counterparty: "charge",
			Type:         models.TransactionTypeCharge,
		}); err != nil {
			return err
		}

		if err := tx.CreateNotification(&models.NotificationRecord{
			AccountUID: uid,
			Text:       fmt.Sprintf("You charged %d. Your balance is now %d.", amount, account.Balance),
			Type:       models.NotificationTypeInfo,
		}); err != nil {
			return err
		}

		newBalance = account.Balance
		return nil
	})
	return newBalance, err
}
