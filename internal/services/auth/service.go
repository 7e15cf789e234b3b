// Package auth handles registration, login, and token refresh. Its only
// output consumed by the rest of the system is a verified caller UID.
package auth

import (
	"context"
	"errors"
	"log"

	"remat/internal/models"
	"remat/internal/repositories"
	"remat/internal/services/account"
	"remat/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrNameRequired       = errors.New("display name is required")
)

// Tokens is an access/refresh token pair.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service authenticates users and issues tokens.
type Service interface {
	Register(ctx context.Context, email, password, name string) (*models.User, *Tokens, error)
	Login(ctx context.Context, email, password string) (*models.User, *Tokens, error)
	Refresh(refreshToken string) (*Tokens, error)
	// UpdateProfile changes the display name on both the auth record and
	// the account, so future transfer records show the new name.
	UpdateProfile(ctx context.Context, uid, name string) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
	accounts account.Service
}

func NewService(userRepo repositories.UserRepository, accounts account.Service) Service {
	if userRepo == nil {
		panic("user repo is required")
	}
	if accounts == nil {
		panic("account service is required")
	}
	return &service{userRepo: userRepo, accounts: accounts}
}

// Register creates the auth record and the zero-balance account backing it.
func (s *service) Register(ctx context.Context, email, password, name string) (*models.User, *Tokens, error) {
	if len(password) < 8 {
		return nil, nil, ErrWeakPassword
	}
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		UID:      uuid.New().String(),
		Email:    email,
		Password: string(hashed),
		Name:     name,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	if _, err := s.accounts.EnsureAccount(ctx, user.UID, name); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*models.User, *Tokens, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		log.Printf("login failed: no user for %s", email)
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// Accounts predate this field being mandatory; heal on login.
	if _, err := s.accounts.EnsureAccount(ctx, user.UID, user.Name); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *service) Refresh(refreshToken string) (*Tokens, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUID(claims.UID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

func (s *service) UpdateProfile(ctx context.Context, uid, name string) (*models.User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	user, err := s.userRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	// Keep the account's display name in step; heal a missing account the
	// same way login does.
	if _, err := s.accounts.EnsureAccount(ctx, uid, name); err != nil {
		return nil, err
	}
	if err := s.accounts.Rename(ctx, uid, name); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) issueTokens(user *models.User) (*Tokens, error) {
	access, refresh, err := utils.GenerateTokens(&models.UserClaims{
		UID:   user.UID,
		Email: user.Email,
		Name:  user.Name,
	})
	if err != nil {
		return nil, err
	}
	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}
