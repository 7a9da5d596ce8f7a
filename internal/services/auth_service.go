package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rahulvm/accountd/internal/models"
	"github.com/rahulvm/accountd/internal/repositories"
	"github.com/rahulvm/accountd/internal/token"
	"github.com/rahulvm/accountd/internal/utils"
)

var (
	// ErrInvalidCredentials is returned for every failed login: unknown
	// email and wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

// AuthService registers accounts and verifies credentials. Token minting is
// delegated to the issuer so token verification stays store-free.
type AuthService struct {
	accountRepo repositories.AccountRepository
	profiles    repositories.ProfileCache
	issuer      *token.Issuer
}

type AuthResponse struct {
	Token   string
	Account *models.Account
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	profiles repositories.ProfileCache,
	issuer *token.Issuer,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		profiles:    profiles,
		issuer:      issuer,
	}
}

// NormalizeEmail maps an email to the canonical form used as the identity key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and mints a token for it. The precheck gives a
// friendly failure on the common case; the unique index remains the authority
// when two registrations for one email race, and its violation is reported as
// the same ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, email, fullName, password string) (*AuthResponse, error) {
	email = NormalizeEmail(email)

	_, err := s.accountRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashedPassword,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	tokenString, err := s.issuer.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{Token: tokenString, Account: account}, nil
}

// Login verifies credentials and mints a token. The unknown-email path burns a
// hash comparison so it costs about the same as a wrong password, and both
// fail with the identical error value.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = NormalizeEmail(email)

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.BurnPasswordCheck(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if !utils.CheckPassword(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	tokenString, err := s.issuer.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{Token: tokenString, Account: account}, nil
}

// VerifyToken checks a presented bearer token and returns the account ID it
// asserts. No store access happens here.
func (s *AuthService) VerifyToken(tokenString string) (uuid.UUID, error) {
	return s.issuer.Verify(tokenString)
}

// GetProfile returns the public profile for an account, reading through the
// cache. A cache miss or cache fault falls back to the store; a cache-fill
// failure is not an error because the store already answered.
func (s *AuthService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if s.profiles != nil {
		if account, err := s.profiles.Get(ctx, id); err == nil {
			return account, nil
		}
	}

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.profiles != nil {
		s.profiles.Set(ctx, account)
	}
	return account, nil
}
