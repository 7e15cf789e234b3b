package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"

	"remat/internal/models"
	"remat/internal/repositories"

	"github.com/google/uuid"
)

// maxRetries bounds transparent re-execution after a commit-time conflict.
const maxRetries = 3

type service struct {
	repo    repositories.AccountRepository
	cache   AccountCache
	metrics MetricsCollector
}

// NewService creates the ledger engine. Cache and metrics are optional.
func NewService(repo repositories.AccountRepository, cache AccountCache, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{repo: repo, cache: cache, metrics: metrics}
}

func (s *service) Transfer(ctx context.Context, callerUID string, input TransferInput) (*TransferResult, error) {
	if callerUID == "" {
		return nil, E(KindUnauthenticated, "authentication required")
	}
	if input.ReceiverUID == "" || input.Amount <= 0 {
		return nil, E(KindInvalidArgument, "receiver and a positive amount are required")
	}
	if input.ReceiverUID == callerUID {
		return nil, E(KindInvalidArgument, "cannot transfer to yourself")
	}

	var result *TransferResult
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			s.metrics.RecordRetry("transfer", attempt)
		}
		result, err = s.attemptTransfer(ctx, callerUID, input)
		if err == nil {
			break
		}
		if errors.Is(err, repositories.ErrVersionConflict) {
			continue
		}
		s.metrics.RecordError("transfer", string(KindOf(err)))
		return nil, s.classify(err)
	}
	if err != nil {
		// Conflict retries exhausted.
		s.metrics.RecordError("transfer", string(KindAborted))
		return nil, Wrap(KindAborted, "transfer aborted after repeated conflicts", err)
	}

	if s.cache != nil {
		if cerr := s.cache.InvalidateAccount(ctx, callerUID); cerr != nil {
			log.Printf("failed to invalidate account cache for %s: %v", callerUID, cerr)
		}
		if cerr := s.cache.InvalidateAccount(ctx, input.ReceiverUID); cerr != nil {
			log.Printf("failed to invalidate account cache for %s: %v", input.ReceiverUID, cerr)
		}
	}
	s.metrics.RecordTransaction(models.TransactionTypePayment, input.Amount)

	return result, nil
}

// attemptTransfer runs one read-validate-write pass inside a single
// database transaction. A repositories.ErrVersionConflict return means the
// pass lost to a concurrent writer and the whole pass should be rerun.
func (s *service) attemptTransfer(ctx context.Context, callerUID string, input TransferInput) (*TransferResult, error) {
	var result *TransferResult
	err := s.repo.ExecuteInTransaction(func(tx repositories.AccountRepository) error {
		sender, receiver, err := lockPair(tx, callerUID, input.ReceiverUID)
		if err != nil {
			return err
		}

		if sender == nil {
			return E(KindNotFound, "sender profile missing")
		}
		senderName := sender.DisplayName(input.SenderName)

		if sender.Balance < input.Amount {
			return E(KindFailedPrecondition, "insufficient balance")
		}

		if receiver == nil {
			return E(KindNotFound, "receiver profile missing")
		}
		receiverName := receiver.DisplayName(input.ReceiverName)

		sender.Balance -= input.Amount
		sender.Points += SenderPoints(input.Amount)
		receiver.Balance += input.Amount
		receiver.Points += ReceiverPoints(input.Amount)

		if err := tx.UpdateBalanceAndPoints(sender); err != nil {
			return err
		}
		if err := tx.UpdateBalanceAndPoints(receiver); err != nil {
			return err
		}

		reference := uuid.New().String()
		if err := tx.CreateTransaction(&models.TransactionRecord{
			AccountUID:      sender.UID,
			Amount:          -input.Amount,
			Counterparty:    receiverName,
			CounterpartyUID: receiver.UID,
			Type:            models.TransactionTypePayment,
			Reference:       reference,
		}); err != nil {
			return err
		}
		if err := tx.CreateTransaction(&models.TransactionRecord{
			AccountUID:      receiver.UID,
			Amount:          input.Amount,
			Counterparty:    senderName,
			CounterpartyUID: sender.UID,
			Type:            models.TransactionTypeReceive,
			Reference:       reference,
		}); err != nil {
			return err
		}

		if err := tx.CreateNotification(&models.NotificationRecord{
			AccountUID: sender.UID,
			Text:       fmt.Sprintf("You paid %d to %s. Your balance is now %d.", input.Amount, receiverName, sender.Balance),
			Type:       models.NotificationTypeInfo,
		}); err != nil {
			return err
		}
		if err := tx.CreateNotification(&models.NotificationRecord{
			AccountUID: receiver.UID,
			Text:       fmt.Sprintf("You received %d from %s. Your balance is now %d.", input.Amount, senderName, receiver.Balance),
			Type:       models.NotificationTypeInfo,
		}); err != nil {
			return err
		}

		result = &TransferResult{
			Reference:     reference,
			NewBalance:    sender.Balance,
			PointsAwarded: SenderPoints(input.Amount),
			Message:       fmt.Sprintf("paid %d to %s", input.Amount, receiverName),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// lockPair locks both account rows in consistent UID order so that two
// opposing transfers cannot deadlock. A missing account comes back nil
// rather than failing, so precondition checks can run in contract order.
func lockPair(tx repositories.AccountRepository, senderUID, receiverUID string) (sender, receiver *models.Account, err error) {
	firstUID, secondUID := senderUID, receiverUID
	if firstUID > secondUID {
		firstUID, secondUID = secondUID, firstUID
	}

	first, err := lockMaybe(tx, firstUID)
	if err != nil {
		return nil, nil, err
	}
	second, err := lockMaybe(tx, secondUID)
	if err != nil {
		return nil, nil, err
	}

	if firstUID == senderUID {
		return first, second, nil
	}
	return second, first, nil
}

func lockMaybe(tx repositories.AccountRepository, uid string) (*models.Account, error) {
	account, err := tx.GetByUIDForUpdate(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// classify maps an escaping error onto the ledger taxonomy. Classified
// errors pass through untouched; anything else becomes Internal with the
// original message preserved for diagnostics.
func (s *service) classify(err error) error {
	var le *Error
	if errors.As(err, &le) {
		return le
	}
	log.Printf("ledger: internal transfer failure: %v", err)
	return Wrap(KindInternal, "transfer failed", err)
}
