package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/printworks/storefront-server-go/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/products", h.ListProducts)
	r.Get("/products/{slug}", h.GetProduct)
	r.Get("/categories", h.ListCategories)

	return r
}

// GET /v1/products?category=<slug>
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	pagination := ParsePagination(r)
	categorySlug := r.URL.Query().Get("category")

	products, err := h.catalogService.Products(r.Context(), categorySlug, pagination.Limit, pagination.Offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"limit":    pagination.Limit,
		"offset":   pagination.Offset,
	})
}

// GET /v1/products/{slug}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.catalogService.ProductBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GET /v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.Categories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
	})
}
