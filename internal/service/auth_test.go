package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{Repo: newTestRepo(t), AdminSecret: "2024"}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "a@x.com", "pw1", false, "")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "pw1", user.PasswordHash, "plaintext must never be stored")

	got, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "pw1", false, "")
	require.NoError(t, err)

	_, errWrongPw := svc.Login(ctx, "a@x.com", "wrong")
	_, errUnknown := svc.Login(ctx, "nobody@x.com", "pw1")

	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "pw1", false, "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostor", "a@x.com", "pw2", false, "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Uniqueness is case-insensitive: emails are lower-cased at the
	// boundary.
	_, err = svc.Register(ctx, "Impostor", "A@X.com", "pw2", false, "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Register_AdminEnrollment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name      string
		secret    string
		wantAdmin bool
		supplied  string
		isAdmin   bool
	}{
		{name: "correct secret", secret: "2024", wantAdmin: true, supplied: "2024", isAdmin: true},
		{name: "wrong secret demotes silently", secret: "2024", wantAdmin: true, supplied: "1999", isAdmin: false},
		{name: "secret without request", secret: "2024", wantAdmin: false, supplied: "2024", isAdmin: false},
		{name: "enrollment disabled", secret: "", wantAdmin: true, supplied: "", isAdmin: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &AuthService{Repo: newTestRepo(t), AdminSecret: tt.secret}
			user, err := svc.Register(ctx, "Bob", "b@x.com", "pw", tt.wantAdmin, tt.supplied)
			require.NoError(t, err, "demotion is a soft-fail, never an error")
			assert.Equal(t, tt.isAdmin, user.IsAdmin)
		})
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{name: "empty name", userName: "", email: "a@x.com", password: "pw"},
		{name: "empty email", userName: "Alice", email: "", password: "pw"},
		{name: "empty password", userName: "Alice", email: "a@x.com", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password, false, "")
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
