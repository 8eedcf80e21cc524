// Package auth is the gate every guarded route passes through. It
// reads session state only; denial reasons never leak more than
// "not authenticated" vs "insufficient privilege".
package auth

import (
	"errors"

	"github.com/gorilla/sessions"

	websession "github.com/xablau3666/loja/internal/session"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAdmin         = errors.New("insufficient privilege")
)

// Authorize evaluates the session against the route's requirement.
// It has no side effects.
func Authorize(s *sessions.Session, requiresAdmin bool) error {
	if _, ok := websession.UserID(s); !ok {
		return ErrNotAuthenticated
	}
	if requiresAdmin && !websession.IsAdmin(s) {
		return ErrNotAdmin
	}
	return nil
}
