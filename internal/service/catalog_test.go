package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xablau3666/loja/internal/models"
)

func TestCatalogService_CRUD(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	product := &models.Product{
		Name:        "caneca",
		Price:       mustMoney(t, "25.50"),
		Description: "caneca de ceramica",
		Image:       "caneca.png",
		Category:    "cozinha",
	}
	require.NoError(t, svc.CreateProduct(ctx, product))
	require.NotZero(t, product.ID)

	got, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "caneca", got.Name)
	assert.True(t, got.Price.Equal(mustMoney(t, "25.50")))

	updated, err := svc.UpdateProduct(ctx, product.ID, models.Product{
		Name:        "caneca grande",
		Price:       mustMoney(t, "30.00"),
		Description: "caneca de ceramica",
		Image:       "caneca.png",
		Category:    "cozinha",
	})
	require.NoError(t, err)
	assert.Equal(t, "caneca grande", updated.Name)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))
	_, err = svc.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_NotFound(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.GetProduct(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteProduct(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateProduct(ctx, 404, models.Product{Name: "x", Price: mustMoney(t, "1.00")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_RejectsNegativePrice(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	err := svc.CreateProduct(ctx, &models.Product{Name: "x", Price: mustMoney(t, "-1.00")})
	assert.ErrorIs(t, err, ErrNegativePrice)

	product := &models.Product{Name: "x", Price: mustMoney(t, "1.00")}
	require.NoError(t, svc.CreateProduct(ctx, product))

	_, err = svc.UpdateProduct(ctx, product.ID, models.Product{Name: "x", Price: mustMoney(t, "-2.00")})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestCatalogService_ByCategory(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	for _, p := range []*models.Product{
		{Name: "caneca", Price: mustMoney(t, "25.50"), Category: "cozinha"},
		{Name: "camiseta", Price: mustMoney(t, "10.00"), Category: "roupas"},
		{Name: "panela", Price: mustMoney(t, "80.00"), Category: "cozinha"},
	} {
		require.NoError(t, svc.CreateProduct(ctx, p))
	}

	cozinha, err := svc.GetProductsByCategory(ctx, "cozinha")
	require.NoError(t, err)
	require.Len(t, cozinha, 2)

	all, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
