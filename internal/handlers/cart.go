package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xablau3666/loja/internal/service"
	websession "github.com/xablau3666/loja/internal/session"
)

// CartHandler mutates the cart held inside the visitor session. The
// cart routes are open to anonymous visitors, unlike the catalog.
type CartHandler struct {
	Catalog *service.CatalogService
}

func (h *CartHandler) View(c echo.Context) error {
	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	items, err := websession.Cart(s)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	flashes := websession.Flashes(s)

	// Lazy init: a first visit materializes the empty cart.
	if err := websession.SetCart(s, items); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if err := websession.Save(c, s); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	cart := service.Cart(items)
	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     cart.Total(),
		"total_brl": cart.Total().FormatBRL(),
		"flashes":   flashes,
	})
}

func (h *CartHandler) Add(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	product, err := h.Catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	items, err := websession.Cart(s)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	cart := service.Cart(items).Add(product)
	if err := websession.SetCart(s, cart); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	websession.Flash(s, fmt.Sprintf("%s adicionado ao carrinho.", product.Name))
	if err := websession.Save(c, s); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *CartHandler) Remove(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	items, err := websession.Cart(s)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	cart := service.Cart(items).Remove(id)
	if err := websession.SetCart(s, cart); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if err := websession.Save(c, s); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.Redirect(http.StatusFound, "/carrinho")
}

// Checkout is a dead-end summary: no payment, no order record. A
// session without a cart reports the empty total instead of failing.
func (h *CartHandler) Checkout(c echo.Context) error {
	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	items, err := websession.Cart(s)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	cart := service.Cart(items)
	return c.JSON(http.StatusOK, echo.Map{
		"total":     cart.Total(),
		"total_brl": cart.Total().FormatBRL(),
	})
}
