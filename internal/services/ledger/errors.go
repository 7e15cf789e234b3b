package ledger

import (
	"errors"
	"fmt"
)

// Kind classifies a ledger failure. Every error leaving the service
// carries exactly one kind; handlers map kinds to HTTP statuses.
type Kind string

const (
	// KindUnauthenticated: no verified caller identity was supplied.
	KindUnauthenticated Kind = "unauthenticated"
	// KindInvalidArgument: missing receiver, non-positive amount, or
	// self-transfer.
	KindInvalidArgument Kind = "invalid_argument"
	// KindNotFound: sender or receiver account does not exist.
	KindNotFound Kind = "not_found"
	// KindFailedPrecondition: sender balance cannot cover the amount.
	KindFailedPrecondition Kind = "failed_precondition"
	// KindAborted: conflict retries exhausted without a clean commit.
	KindAborted Kind = "aborted"
	// KindInternal: any other failure; the underlying error is preserved.
	KindInternal Kind = "internal"
)

// Error is a classified ledger failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a ledger error with the given kind and message.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds a ledger error preserving the underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error, KindInternal for anything
// that is not a classified ledger error.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindInternal
}
