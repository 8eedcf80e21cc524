package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	websession "github.com/xablau3666/loja/internal/session"
)

// AdminOnly guards catalog writes. A logged-in non-admin gets a flash
// and lands back on the catalog, matching the storefront's behavior;
// an anonymous visitor goes to the login page.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := websession.Current(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err)
		}

		switch err := Authorize(s, true); {
		case errors.Is(err, ErrNotAuthenticated):
			return c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, ErrNotAdmin):
			websession.Flash(s, "Acesso negado. Somente administradores.")
			if err := websession.Save(c, s); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err)
			}
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}
