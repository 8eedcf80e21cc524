package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xablau3666/loja/internal/mykafka"
	"github.com/xablau3666/loja/internal/service"
	websession "github.com/xablau3666/loja/internal/session"
)

type AuthHandler struct {
	Service  *service.AuthService
	Producer *mykafka.Producer
}

type authRequest struct {
	Nome       string `form:"nome"  json:"nome"`
	Email      string `form:"email" json:"email"`
	Senha      string `form:"senha" json:"senha"`
	IsAdmin    string `form:"is_admin"    json:"is_admin"`
	AdminSenha string `form:"admin_senha" json:"admin_senha"`
}

// LoginForm hands the pending flash messages to the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	flashes := websession.Flashes(s)
	if err := websession.Save(c, s); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"flashes": flashes})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	user, err := h.Service.Login(c.Request().Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			websession.Flash(s, "Login ou senha incorretos")
			if err := websession.Save(c, s); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err)
			}
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	// The cart is deliberately left alone: whatever the visitor
	// collected before logging in stays in the session.
	websession.SetAuth(s, user.ID, user.IsAdmin)
	if err := websession.Save(c, s); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":    "user_logged_in",
		"user_id": user.ID,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return h.LoginForm(c)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	wantAdmin := req.IsAdmin != ""
	user, err := h.Service.Register(c.Request().Context(), req.Nome, req.Email, req.Senha, wantAdmin, req.AdminSenha)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			websession.Flash(s, "Usuário já cadastrado com esse email")
			if err := websession.Save(c, s); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err)
			}
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "nome, email and senha are required"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":    "user_registered",
		"user_id": user.ID,
	})

	// Registration does not log the visitor in.
	return c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	websession.ClearAuth(s)
	if err := websession.Save(c, s); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.Redirect(http.StatusFound, "/login")
}
