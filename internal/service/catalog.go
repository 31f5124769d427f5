package service

import (
	"context"

	apperrors "github.com/printworks/storefront-server-go/internal/errors"
	"github.com/printworks/storefront-server-go/internal/model"
	"github.com/printworks/storefront-server-go/internal/repository"
)

// CatalogService serves product browsing: active products with optional
// category filter, product detail by slug, and the category list.
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *CatalogService) Products(ctx context.Context, categorySlug string, limit, offset int) ([]model.Product, error) {
	products, err := s.productRepo.ListActive(ctx, categorySlug, limit, offset)
	if err != nil {
		return nil, apperrors.Remote(err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (s *CatalogService) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if slug == "" {
		return nil, apperrors.MissingRequired("slug")
	}

	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, apperrors.Remote(err)
	}
	if product == nil {
		return nil, apperrors.NotFound("Product")
	}
	return product, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Remote(err)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}
