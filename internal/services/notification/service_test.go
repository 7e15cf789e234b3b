package notification

import (
	"context"
	"testing"

	"remat/internal/models"
	"remat/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	notifications []models.NotificationRecord
}

func (r *fakeRepo) Create(*models.Account) error { return nil }
func (r *fakeRepo) GetByUID(string) (*models.Account, error) {
	return nil, repositories.ErrAccountNotFound
}
func (r *fakeRepo) GetByUIDForUpdate(string) (*models.Account, error) {
	return nil, repositories.ErrAccountNotFound
}
func (r *fakeRepo) UpdateBalanceAndPoints(*models.Account) error      { return nil }
func (r *fakeRepo) UpdateName(string, string) error                   { return nil }
func (r *fakeRepo) CreateTransaction(*models.TransactionRecord) error { return nil }
func (r *fakeRepo) ListTransactions(context.Context, string, int, int) ([]models.TransactionRecord, error) {
	return nil, nil
}

func (r *fakeRepo) CreateNotification(record *models.NotificationRecord) error {
	record.ID = uint(len(r.notifications) + 1)
	r.notifications = append(r.notifications, *record)
	return nil
}

func (r *fakeRepo) ListNotifications(_ context.Context, uid string, limit, offset int) ([]models.NotificationRecord, error) {
	var out []models.NotificationRecord
	for _, n := range r.notifications {
		if n.AccountUID == uid {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeRepo) MarkNotificationRead(uid string, id uint) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id && r.notifications[i].AccountUID == uid {
			r.notifications[i].Read = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeRepo) MarkAllNotificationsRead(uid string) error {
	for i := range r.notifications {
		if r.notifications[i].AccountUID == uid {
			r.notifications[i].Read = true
		}
	}
	return nil
}

func (r *fakeRepo) ExecuteInTransaction(fn func(repositories.AccountRepository) error) error {
	return fn(r)
}

func seed(r *fakeRepo) {
	_ = r.CreateNotification(&models.NotificationRecord{AccountUID: "alice", Text: "a"})
	_ = r.CreateNotification(&models.NotificationRecord{AccountUID: "alice", Text: "b"})
	_ = r.CreateNotification(&models.NotificationRecord{AccountUID: "bob", Text: "c"})
}

func TestList(t *testing.T) {
	repo := &fakeRepo{}
	seed(repo)
	svc := NewService(repo)

	records, err := svc.List(context.Background(), "alice", 0, 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMarkRead(t *testing.T) {
	repo := &fakeRepo{}
	seed(repo)
	svc := NewService(repo)

	require.NoError(t, svc.MarkRead(context.Background(), "alice", 1))
	assert.True(t, repo.notifications[0].Read)
	assert.False(t, repo.notifications[1].Read)

	// Another user's notification is not reachable.
	err := svc.MarkRead(context.Background(), "alice", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkAllRead(t *testing.T) {
	repo := &fakeRepo{}
	seed(repo)
	svc := NewService(repo)

	require.NoError(t, svc.MarkAllRead(context.Background(), "alice"))
	assert.True(t, repo.notifications[0].Read)
	assert.True(t, repo.notifications[1].Read)
	assert.False(t, repo.notifications[2].Read, "bob's notifications untouched")
}
