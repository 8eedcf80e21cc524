package service

import (
	"context"
	"errors"
	"strings"

	"github.com/xablau3666/loja/internal/hash"
	"github.com/xablau3666/loja/internal/logging"
	"github.com/xablau3666/loja/internal/models"
	"github.com/xablau3666/loja/internal/repo"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = repo.ErrDuplicateEmail
	ErrValidation         = errors.New("validation")
)

type AuthService struct {
	Repo *repo.GormRepo
	// AdminSecret is the enrollment passphrase compared at
	// registration. Empty disables admin self-enrollment.
	AdminSecret string
}

// normalizeEmail makes email uniqueness case-insensitive. The policy
// is documented in DESIGN.md.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The admin flag is granted only when it
// was requested together with the correct enrollment secret; any
// mismatch silently demotes the account to a regular user.
func (s *AuthService) Register(ctx context.Context, name, email, password string, wantAdmin bool, adminSecret string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrValidation
	}

	isAdmin := wantAdmin && s.AdminSecret != "" && adminSecret == s.AdminSecret
	if wantAdmin && !isAdmin {
		l.Warn("admin enrollment demoted", "email", email)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register failed", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		IsAdmin:      isAdmin,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			l.Warn("register failed", "reason", "duplicate email", "email", email)
			return nil, ErrDuplicateEmail
		}
		l.Error("register failed", "error", err)
		return nil, err
	}

	l.Info("user registered", "user_id", user.ID, "is_admin", user.IsAdmin)
	return user, nil
}

// Login authenticates by email and password. An unknown email and a
// wrong password return the same error so the response never reveals
// which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		l.Error("login failed", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login failed", "reason", "wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
