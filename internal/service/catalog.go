package service

import (
	"context"

	"github.com/avoronin/ar_shop/internal/models"
	"github.com/avoronin/ar_shop/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repo.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, filter)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	return s.Repo.ListCategories(ctx)
}
