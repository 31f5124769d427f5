package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/printworks/storefront-server-go/internal/errors"
	"github.com/printworks/storefront-server-go/internal/model"
	"github.com/printworks/storefront-server-go/internal/repository"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) ListActive(ctx context.Context, categorySlug string, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, categorySlug, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *mockProductRepo) WithTx(tx *sqlx.Tx) repository.ProductRepository {
	return m
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *mockCategoryRepo) WithTx(tx *sqlx.Tx) repository.CategoryRepository {
	return m
}

func TestCatalogServiceProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns products", func(t *testing.T) {
		products := new(mockProductRepo)
		svc := NewCatalogService(products, new(mockCategoryRepo))

		products.On("ListActive", ctx, "t-shirts", 50, 0).
			Return([]model.Product{{ID: "p1", Name: "Classic Tee"}}, nil)

		result, err := svc.Products(ctx, "t-shirts", 50, 0)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Classic Tee", result[0].Name)
	})

	t.Run("empty result is a slice, not nil", func(t *testing.T) {
		products := new(mockProductRepo)
		svc := NewCatalogService(products, new(mockCategoryRepo))

		products.On("ListActive", ctx, "", 50, 0).Return([]model.Product(nil), nil)

		result, err := svc.Products(ctx, "", 50, 0)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("wraps store failure", func(t *testing.T) {
		products := new(mockProductRepo)
		svc := NewCatalogService(products, new(mockCategoryRepo))

		products.On("ListActive", ctx, "", 50, 0).Return(nil, errors.New("boom"))

		_, err := svc.Products(ctx, "", 50, 0)
		assertCode(t, err, apperrors.ErrCodeRemote)
	})
}

func TestCatalogServiceProductBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("returns product", func(t *testing.T) {
		products := new(mockProductRepo)
		svc := NewCatalogService(products, new(mockCategoryRepo))

		products.On("FindBySlug", ctx, "classic-tee").
			Return(&model.Product{ID: "p1", Slug: "classic-tee"}, nil)

		product, err := svc.ProductBySlug(ctx, "classic-tee")
		require.NoError(t, err)
		assert.Equal(t, "classic-tee", product.Slug)
	})

	t.Run("missing slug rejected before the store", func(t *testing.T) {
		products := new(mockProductRepo)
		svc := NewCatalogService(products, new(mockCategoryRepo))

		_, err := svc.ProductBySlug(ctx, "")
		assertCode(t, err, apperrors.ErrCodeMissingRequired)
		products.AssertNotCalled(t, "FindBySlug")
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		products := new(mockProductRepo)
		svc := NewCatalogService(products, new(mockCategoryRepo))

		products.On("FindBySlug", ctx, "gone").Return(nil, nil)

		_, err := svc.ProductBySlug(ctx, "gone")
		assertCode(t, err, apperrors.ErrCodeNotFound)
	})
}

func TestCatalogServiceCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("returns categories", func(t *testing.T) {
		categories := new(mockCategoryRepo)
		svc := NewCatalogService(new(mockProductRepo), categories)

		categories.On("ListAll", ctx).
			Return([]model.Category{{ID: "c1", Name: "Hoodies"}}, nil)

		result, err := svc.Categories(ctx)
		require.NoError(t, err)
		require.Len(t, result, 1)
	})

	t.Run("wraps store failure", func(t *testing.T) {
		categories := new(mockCategoryRepo)
		svc := NewCatalogService(new(mockProductRepo), categories)

		categories.On("ListAll", ctx).Return(nil, errors.New("boom"))

		_, err := svc.Categories(ctx)
		assertCode(t, err, apperrors.ErrCodeRemote)
	})
}
