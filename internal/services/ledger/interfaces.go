package ledger

import (
	"context"
)

// Service is the ledger engine: the one operation that moves stored value
// between two accounts.
type Service interface {
	// Transfer atomically debits the caller, credits the receiver, awards
	// loyalty points, and appends the paired transaction and notification
	// records. Either all six writes commit or none do.
	Transfer(ctx context.Context, callerUID string, input TransferInput) (*TransferResult, error)
}

// AccountCache invalidates cached account snapshots after a commit.
type AccountCache interface {
	InvalidateAccount(ctx context.Context, uid string) error
}
