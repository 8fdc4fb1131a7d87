// Package auth implements account creation, password checks, and the
// superuser bootstrap for the web service.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/schooldesk/theschooldesk.app/internal/platform/id"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

// ErrEmailTaken indicates a signup against an existing account email.
var ErrEmailTaken = errors.New("email is already registered")

// ErrInvalidCredentials indicates a failed login. It is deliberately opaque
// about whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// MinPasswordLength matches the original deployment's password validator.
const MinPasswordLength = 8

// Service wires account operations to persistence.
type Service struct {
	Store storage.Store
	Now   func() time.Time
}

func (s Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// SignUp creates an account and its school. Every account owns exactly one
// school, so both records are written together.
func (s Service) SignUp(ctx context.Context, email, password string) (storage.User, error) {
	if s.Store == nil {
		return storage.User{}, fmt.Errorf("auth service is not configured")
	}
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return storage.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return storage.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return storage.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	account := storage.User{
		ID:           id.MustNewID(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.PutUser(ctx, account); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return storage.User{}, ErrEmailTaken
		}
		return storage.User{}, fmt.Errorf("store user: %w", err)
	}
	if err := s.ensureSchool(ctx, account.ID, now); err != nil {
		return storage.User{}, err
	}
	return account, nil
}

// Authenticate verifies an email and password pair.
func (s Service) Authenticate(ctx context.Context, email, password string) (storage.User, error) {
	if s.Store == nil {
		return storage.User{}, fmt.Errorf("auth service is not configured")
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return storage.User{}, ErrInvalidCredentials
	}

	account, err := s.Store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.User{}, ErrInvalidCredentials
		}
		return storage.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return storage.User{}, ErrInvalidCredentials
	}
	return account, nil
}

// EnsureSuperuser creates the administrative account when missing and resets
// its password otherwise, so repeated container starts converge on the
// configured credentials. It reports whether the account was created.
func (s Service) EnsureSuperuser(ctx context.Context, email, password string) (bool, error) {
	if s.Store == nil {
		return false, fmt.Errorf("auth service is not configured")
	}
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return false, err
	}
	if err := validatePassword(password); err != nil {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	existing, err := s.Store.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		existing.PasswordHash = string(hash)
		existing.IsSuperuser = true
		existing.UpdatedAt = now
		if err := s.Store.PutUser(ctx, existing); err != nil {
			return false, fmt.Errorf("update superuser: %w", err)
		}
		if err := s.ensureSchool(ctx, existing.ID, now); err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, storage.ErrNotFound):
		account := storage.User{
			ID:           id.MustNewID(),
			Email:        email,
			PasswordHash: string(hash),
			IsSuperuser:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.Store.PutUser(ctx, account); err != nil {
			return false, fmt.Errorf("store superuser: %w", err)
		}
		if err := s.ensureSchool(ctx, account.ID, now); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, fmt.Errorf("lookup superuser: %w", err)
	}
}

// ensureSchool guarantees the one-school-per-account invariant.
func (s Service) ensureSchool(ctx context.Context, userID string, now time.Time) error {
	_, err := s.Store.GetSchoolByUser(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("lookup school: %w", err)
	}
	school := storage.School{
		ID:        id.MustNewID(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.PutSchool(ctx, school); err != nil {
		return fmt.Errorf("store school: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}
