package service

import (
	"context"
	"errors"

	"github.com/xablau3666/loja/internal/models"
	"github.com/xablau3666/loja/internal/repo"
)

var (
	ErrNotFound      = repo.ErrNotFound
	ErrNegativePrice = errors.New("price cannot be negative")
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.GetProductsByCategory(ctx, category)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Price.IsNegative() {
		return ErrNegativePrice
	}
	return s.Repo.CreateProduct(ctx, product)
}

// UpdateProduct replaces every mutable field unconditionally. There is
// no optimistic concurrency token; the last writer wins.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req models.Product) (*models.Product, error) {
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Description = req.Description
	product.Image = req.Image
	product.Category = req.Category

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProduct(ctx, id)
}
