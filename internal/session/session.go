// Package session wraps the cookie-backed visitor session. The client
// holds only the opaque cookie; user id, admin flag and the cart
// snapshot list live in the session values.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/xablau3666/loja/internal/models"
)

const (
	name = "loja_session"

	keyUserID  = "user_id"
	keyIsAdmin = "is_admin"
	keyCart    = "cart"
)

func NewStore(secret []byte) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func Middleware(secret []byte) echo.MiddlewareFunc {
	return echosession.Middleware(NewStore(secret))
}

func Current(c echo.Context) (*sessions.Session, error) {
	s, err := echosession.Get(name, c)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return s, nil
}

func Save(c echo.Context, s *sessions.Session) error {
	return s.Save(c.Request(), c.Response())
}

func UserID(s *sessions.Session) (uint, bool) {
	v, ok := s.Values[keyUserID]
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func IsAdmin(s *sessions.Session) bool {
	v, ok := s.Values[keyIsAdmin]
	if !ok {
		return false
	}
	admin, _ := v.(bool)
	return admin
}

func SetAuth(s *sessions.Session, userID uint, isAdmin bool) {
	s.Values[keyUserID] = userID
	s.Values[keyIsAdmin] = isAdmin
}

// ClearAuth drops the auth fields only. The cart survives logout, as
// it does for a visitor who never logged in.
func ClearAuth(s *sessions.Session) {
	delete(s.Values, keyUserID)
	delete(s.Values, keyIsAdmin)
}

// Cart returns the snapshot list stored in the session. A session
// without a cart yields an empty list, not an error.
func Cart(s *sessions.Session) ([]models.CartItem, error) {
	raw, ok := s.Values[keyCart].(string)
	if !ok || raw == "" {
		return []models.CartItem{}, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("session: corrupt cart: %w", err)
	}
	return items, nil
}

func SetCart(s *sessions.Session, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("session: encode cart: %w", err)
	}
	s.Values[keyCart] = string(raw)
	return nil
}

func Flash(s *sessions.Session, msg string) {
	s.AddFlash(msg)
}

func Flashes(s *sessions.Session) []string {
	raw := s.Flashes()
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
