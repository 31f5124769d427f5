package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/printworks/storefront-server-go/internal/model"
	"github.com/printworks/storefront-server-go/internal/repository"
	"github.com/printworks/storefront-server-go/internal/service"
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

func newCatalogRouter(products *mockProductRepo, categories *mockCategoryRepo) http.Handler {
	catalogService := service.NewCatalogService(products, categories)
	catalogHandler := NewCatalogHandler(catalogService)

	r := chi.NewRouter()
	r.Mount("/v1", catalogHandler.Routes())
	return r
}

func TestCatalogHandlerListProducts(t *testing.T) {
	t.Run("lists products with default pagination", func(t *testing.T) {
		products := new(mockProductRepo)
		products.On("ListActive", mock.Anything, "", DefaultLimit, 0).
			Return([]model.Product{{ID: "p1", Name: "Classic Tee", Slug: "classic-tee"}}, nil)

		rec := httptest.NewRecorder()
		newCatalogRouter(products, new(mockCategoryRepo)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Products []model.Product `json:"products"`
			Limit    int             `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Products, 1)
		assert.Equal(t, DefaultLimit, body.Limit)
	})

	t.Run("passes category filter through", func(t *testing.T) {
		products := new(mockProductRepo)
		products.On("ListActive", mock.Anything, "hoodies", DefaultLimit, 0).
			Return([]model.Product{}, nil)

		rec := httptest.NewRecorder()
		newCatalogRouter(products, new(mockCategoryRepo)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products?category=hoodies", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		products.AssertExpectations(t)
	})

	t.Run("store failure maps to bad gateway", func(t *testing.T) {
		products := new(mockProductRepo)
		products.On("ListActive", mock.Anything, "", DefaultLimit, 0).Return(nil, assert.AnError)

		rec := httptest.NewRecorder()
		newCatalogRouter(products, new(mockCategoryRepo)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestCatalogHandlerGetProduct(t *testing.T) {
	t.Run("returns product by slug", func(t *testing.T) {
		products := new(mockProductRepo)
		products.On("FindBySlug", mock.Anything, "classic-tee").
			Return(&model.Product{ID: "p1", Slug: "classic-tee", Name: "Classic Tee"}, nil)

		rec := httptest.NewRecorder()
		newCatalogRouter(products, new(mockCategoryRepo)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products/classic-tee", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var product model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
		assert.Equal(t, "Classic Tee", product.Name)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		products := new(mockProductRepo)
		products.On("FindBySlug", mock.Anything, "gone").Return(nil, nil)

		rec := httptest.NewRecorder()
		newCatalogRouter(products, new(mockCategoryRepo)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products/gone", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	})
}

func TestCatalogHandlerListCategories(t *testing.T) {
	t.Run("lists categories", func(t *testing.T) {
		categories := new(mockCategoryRepo)
		categories.On("ListAll", mock.Anything).
			Return([]model.Category{{ID: "c1", Name: "Hoodies", Slug: "hoodies"}}, nil)

		rec := httptest.NewRecorder()
		newCatalogRouter(new(mockProductRepo), categories).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Categories []model.Category `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Categories, 1)
		assert.Equal(t, "Hoodies", body.Categories[0].Name)
	})
}
