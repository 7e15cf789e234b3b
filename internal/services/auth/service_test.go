package auth

import (
	"context"
	"testing"

	"remat/internal/models"
	"remat/internal/repositories"
	"remat/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byUID   map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byUID:   make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	cp := *user
	r.byEmail[user.Email] = &cp
	r.byUID[user.UID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByUID(uid string) (*models.User, error) {
	u, ok := r.byUID[uid]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(user *models.User) error { return r.Create(user) }

type fakeAccounts struct {
	ensured []string
	names   map[string]string
}

func (a *fakeAccounts) EnsureAccount(_ context.Context, uid, name string) (*models.Account, error) {
	a.ensured = append(a.ensured, uid)
	if a.names == nil {
		a.names = make(map[string]string)
	}
	if _, ok := a.names[uid]; !ok {
		a.names[uid] = name
	}
	return &models.Account{UID: uid, Name: a.names[uid]}, nil
}

func (a *fakeAccounts) GetAccount(_ context.Context, uid string) (*models.Account, error) {
	return &models.Account{UID: uid}, nil
}

func (a *fakeAccounts) Rename(_ context.Context, uid, name string) error {
	if a.names == nil {
		a.names = make(map[string]string)
	}
	a.names[uid] = name
	return nil
}

func (a *fakeAccounts) ListTransactions(context.Context, string, int, int) ([]models.TransactionRecord, error) {
	return nil, nil
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	accounts := &fakeAccounts{}
	svc := NewService(repo, accounts)

	user, tokens, err := svc.Register(context.Background(), "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, user.UID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEqual(t, "password123", user.Password, "password must be hashed")

	// Registration opens the zero-balance account.
	require.Len(t, accounts.ensured, 1)
	assert.Equal(t, user.UID, accounts.ensured[0])

	// The issued token carries the UID as the verified identity.
	_, claims, err := utils.ParseToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.UID, claims.UID)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeAccounts{})

	_, _, err := svc.Register(context.Background(), "a@example.com", "short", "A")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, _, err = svc.Register(context.Background(), "a@example.com", "password123", "A")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "a@example.com", "password123", "A")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	accounts := &fakeAccounts{}
	svc := NewService(repo, accounts)

	registered, _, err := svc.Register(context.Background(), "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), registered.UID, "Alicia")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)

	// Both the auth record and the account carry the new name.
	stored, err := repo.GetByUID(registered.UID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", stored.Name)
	assert.Equal(t, "Alicia", accounts.names[registered.UID])

	_, err = svc.UpdateProfile(context.Background(), registered.UID, "")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.UpdateProfile(context.Background(), "nobody", "Name")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestRefresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeAccounts{})

	_, tokens, err := svc.Register(context.Background(), "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
