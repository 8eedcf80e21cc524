package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xablau3666/loja/internal/logging"
	"github.com/xablau3666/loja/internal/models"
	"github.com/xablau3666/loja/internal/money"
	"github.com/xablau3666/loja/internal/mykafka"
	"github.com/xablau3666/loja/internal/search"
	"github.com/xablau3666/loja/internal/service"
	websession "github.com/xablau3666/loja/internal/session"
)

type ProductHandler struct {
	Catalog  *service.CatalogService
	Search   *search.Service
	Producer *mykafka.Producer
}

// productRequest carries the edit-form fields. Price arrives as a
// locale-formatted string ("R$ 1.234,56") and is parsed at this
// boundary; storage only ever sees the numeric value.
type productRequest struct {
	Nome      string `form:"nome"      json:"nome"`
	Preco     string `form:"preco"     json:"preco"`
	Descricao string `form:"descricao" json:"descricao"`
	Imagem    string `form:"imagem"    json:"imagem"`
	Categoria string `form:"categoria" json:"categoria"`
}

func (r *productRequest) toProduct() (models.Product, error) {
	price, err := money.ParseBRL(r.Preco)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{
		Name:        r.Nome,
		Price:       price,
		Description: r.Descricao,
		Image:       r.Imagem,
		Category:    r.Categoria,
	}, nil
}

func (h *ProductHandler) Index(c echo.Context) error {
	s, err := websession.Current(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	flashes := websession.Flashes(s)
	if err := websession.Save(c, s); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	products, err := h.Catalog.GetProducts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": products,
		"flashes":  flashes,
	})
}

func (h *ProductHandler) Show(c echo.Context) error {
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

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Category(c echo.Context) error {
	products, err := h.Catalog.GetProductsByCategory(c.Request().Context(), c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusOK, echo.Map{"products": []models.Product{}})
	}

	products, err := h.Search.Search(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

func (h *ProductHandler) CreateForm(c echo.Context) error {
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

func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	product, err := req.toProduct()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid price"})
	}

	if err := h.Catalog.CreateProduct(c.Request().Context(), &product); err != nil {
		if errors.Is(err, service.ErrNegativePrice) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	h.indexProduct(c, &product)
	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]interface{}{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})

	return c.Redirect(http.StatusFound, "/")
}

// EditForm returns the product with its price already formatted the
// way the form shows it.
func (h *ProductHandler) EditForm(c echo.Context) error {
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

	return c.JSON(http.StatusOK, echo.Map{
		"product": product,
		"preco":   product.Price.FormatBRL(),
	})
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	fields, err := req.toProduct()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid price"})
	}

	product, err := h.Catalog.UpdateProduct(c.Request().Context(), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		case errors.Is(err, service.ErrNegativePrice):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	h.indexProduct(c, product)
	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]interface{}{
		"type":       "product_updated",
		"product_id": product.ID,
		"name":       product.Name,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.Catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	if err := h.Search.RemoveProduct(c.Request().Context(), id); err != nil {
		logging.FromContext(c.Request().Context()).Error("search deindex error", "product_id", id, "error", err)
	}
	publish(c, h.Producer, "product_events", fmt.Sprint(id), map[string]interface{}{
		"type":       "product_deleted",
		"product_id": id,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *ProductHandler) indexProduct(c echo.Context, p *models.Product) {
	if err := h.Search.IndexProduct(c.Request().Context(), p); err != nil {
		logging.FromContext(c.Request().Context()).Error("search index error", "product_id", p.ID, "error", err)
	}
}
