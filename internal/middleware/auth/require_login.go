package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	websession "github.com/xablau3666/loja/internal/session"
)

// RequireLogin guards catalog reads: anonymous visitors are sent to
// the login page.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := websession.Current(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err)
		}

		if err := Authorize(s, false); err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
