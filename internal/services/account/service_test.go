package account

import (
	"context"
	"testing"
	"time"

	"remat/internal/models"
	"remat/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	accounts     map[string]*models.Account
	transactions []models.TransactionRecord
	listLimit    int
	listOffset   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: make(map[string]*models.Account)}
}

func (r *fakeRepo) Create(account *models.Account) error {
	cp := *account
	r.accounts[account.UID] = &cp
	return nil
}

func (r *fakeRepo) GetByUID(uid string) (*models.Account, error) {
	a, ok := r.accounts[uid]
	if !ok {
		return nil, repositories.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) GetByUIDForUpdate(uid string) (*models.Account, error) { return r.GetByUID(uid) }
func (r *fakeRepo) UpdateBalanceAndPoints(*models.Account) error          { return nil }

func (r *fakeRepo) UpdateName(uid, name string) error {
	a, ok := r.accounts[uid]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	a.Name = name
	return nil
}

func (r *fakeRepo) CreateTransaction(record *models.TransactionRecord) error {
	r.transactions = append(r.transactions, *record)
	return nil
}

func (r *fakeRepo) ListTransactions(_ context.Context, uid string, limit, offset int) ([]models.TransactionRecord, error) {
	r.listLimit = limit
	r.listOffset = offset
	var out []models.TransactionRecord
	for _, t := range r.transactions {
		if t.AccountUID == uid {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateNotification(*models.NotificationRecord) error { return nil }
func (r *fakeRepo) ListNotifications(context.Context, string, int, int) ([]models.NotificationRecord, error) {
	return nil, nil
}
func (r *fakeRepo) MarkNotificationRead(string, uint) error { return nil }
func (r *fakeRepo) MarkAllNotificationsRead(string) error   { return nil }
func (r *fakeRepo) ExecuteInTransaction(fn func(repositories.AccountRepository) error) error {
	return fn(r)
}

type fakeCache struct {
	accounts map[string]*models.Account
	hits     int
}

func newFakeCache() *fakeCache {
	return &fakeCache{accounts: make(map[string]*models.Account)}
}

func (c *fakeCache) GetAccount(_ context.Context, uid string) (*models.Account, error) {
	a, ok := c.accounts[uid]
	if !ok {
		return nil, assert.AnError
	}
	c.hits++
	return a, nil
}

func (c *fakeCache) CacheAccount(_ context.Context, account *models.Account) error {
	c.accounts[account.UID] = account
	return nil
}

func (c *fakeCache) InvalidateAccount(_ context.Context, uid string) error {
	delete(c.accounts, uid)
	return nil
}

func TestEnsureAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	created, err := svc.EnsureAccount(context.Background(), "alice", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.UID)
	assert.Zero(t, created.Balance)
	assert.Zero(t, created.Points)

	// Second call returns the existing account untouched.
	repo.accounts["alice"].Balance = 500
	again, err := svc.EnsureAccount(context.Background(), "alice", "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, int64(500), again.Balance)
	assert.Equal(t, "Alice", again.Name)
}

func TestGetAccount(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	svc := NewService(repo, cache)

	_, err := svc.GetAccount(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	require.NoError(t, repo.Create(&models.Account{UID: "alice", Balance: 100}))

	// First read misses the cache and fills it.
	got, err := svc.GetAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Balance)
	assert.Zero(t, cache.hits)

	// Second read is served from cache.
	_, err = svc.GetAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
}

func TestRename(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	svc := NewService(repo, cache)

	require.NoError(t, repo.Create(&models.Account{UID: "alice", Name: "Alice"}))

	// Warm the cache, then rename; the stale snapshot must be dropped.
	_, err := svc.GetAccount(context.Background(), "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Rename(context.Background(), "alice", "Alicia"))
	assert.Equal(t, "Alicia", repo.accounts["alice"].Name)
	assert.NotContains(t, cache.accounts, "alice")

	err = svc.Rename(context.Background(), "alice", "")
	assert.Error(t, err)
	err = svc.Rename(context.Background(), "nobody", "Name")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestListTransactions(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	now := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateTransaction(&models.TransactionRecord{
			AccountUID: "alice",
			Amount:     int64(i + 1),
			CreatedAt:  now,
		}))
	}
	require.NoError(t, repo.CreateTransaction(&models.TransactionRecord{AccountUID: "bob", Amount: 9}))

	records, err := svc.ListTransactions(context.Background(), "alice", 0, -5)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	// Out-of-range paging inputs are clamped to defaults.
	assert.Equal(t, 20, repo.listLimit)
	assert.Equal(t, 0, repo.listOffset)
}
