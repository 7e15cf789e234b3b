package repositories

import "errors"

// Repository errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrVersionConflict is returned when an optimistic-lock update loses
	// to a concurrent writer. Callers retry the whole unit of work.
	ErrVersionConflict = errors.New("account version conflict")
)
