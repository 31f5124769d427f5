package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	apperrors "github.com/printworks/storefront-server-go/internal/errors"
	"github.com/printworks/storefront-server-go/internal/middleware"
	"github.com/printworks/storefront-server-go/internal/model"
	"github.com/printworks/storefront-server-go/internal/service"
)

type CartHandler struct {
	cartService *service.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetCart)
	r.Post("/items", h.AddItem)
	r.Patch("/items/{itemID}", h.UpdateItemQuantity)
	r.Delete("/items/{itemID}", h.RemoveItem)

	return r
}

// GET /v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetCartToken(r.Context())

	view, err := h.cartService.List(r.Context(), token)
	if err != nil {
		logCartError(err, "list cart")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type addItemRequest struct {
	ProductID     string               `json:"productId"`
	Quantity      int                  `json:"quantity"`
	Price         float64              `json:"price"`
	SelectedColor *string              `json:"selectedColor,omitempty"`
	SelectedSize  *string              `json:"selectedSize,omitempty"`
	CustomOptions *model.CustomOptions `json:"customOptions,omitempty"`
}

// POST /v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "malformed JSON"))
		return
	}

	token := middleware.GetCartToken(r.Context())

	item, err := h.cartService.Add(r.Context(), service.AddToCartParams{
		Token:         token,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Price:         req.Price,
		SelectedColor: req.SelectedColor,
		SelectedSize:  req.SelectedSize,
		CustomOptions: req.CustomOptions,
	})
	if err != nil {
		logCartError(err, "add cart item")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PATCH /v1/cart/items/{itemID}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "malformed JSON"))
		return
	}

	token := middleware.GetCartToken(r.Context())

	item, err := h.cartService.UpdateQuantity(r.Context(), token, itemID, req.Quantity)
	if err != nil {
		logCartError(err, "update cart item")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// DELETE /v1/cart/items/{itemID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	token := middleware.GetCartToken(r.Context())

	if err := h.cartService.Remove(r.Context(), token, itemID); err != nil {
		logCartError(err, "remove cart item")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// logCartError records failures without ever touching token material.
// Validation rejections are expected traffic and logged at debug only.
func logCartError(err error, operation string) {
	code := apperrors.GetCode(err)
	switch code {
	case apperrors.ErrCodeRemote, apperrors.ErrCodeInternal:
		log.Error().Err(err).Str("operation", operation).Msg("cart operation failed")
	default:
		log.Debug().Str("code", string(code)).Str("operation", operation).Msg("cart request rejected")
	}
}
