package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/printworks/storefront-server-go/internal/audit"
	apperrors "github.com/printworks/storefront-server-go/internal/errors"
	"github.com/printworks/storefront-server-go/internal/model"
	"github.com/printworks/storefront-server-go/internal/repository"
	"github.com/printworks/storefront-server-go/internal/session"
)

// CartCache is the session-scoped cart view cache the service invalidates
// after every successful write.
type CartCache interface {
	Get(ctx context.Context, token string) (*model.CartView, bool)
	Set(ctx context.Context, token string, view *model.CartView)
	Invalidate(ctx context.Context, token string)
}

type AddToCartParams struct {
	Token         string
	ProductID     string
	Quantity      int
	Price         float64
	SelectedColor *string
	SelectedSize  *string
	CustomOptions *model.CustomOptions
}

// CartService is the session-scoped gateway to the cart_items collection.
// Every operation validates its inputs before any round-trip to the
// store, and every successful write invalidates exactly that session's
// cached cart view.
type CartService struct {
	cartRepo repository.CartItemRepository
	cache    CartCache
}

func NewCartService(cartRepo repository.CartItemRepository, cache CartCache) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		cache:    cache,
	}
}

// List returns the cart view for one session, reading through the cache.
func (s *CartService) List(ctx context.Context, token string) (*model.CartView, error) {
	if len(token) < session.MinLength {
		return nil, apperrors.InvalidSession()
	}

	if view, ok := s.cache.Get(ctx, token); ok {
		return view, nil
	}

	lines, err := s.cartRepo.ListBySession(ctx, token)
	if err != nil {
		return nil, apperrors.Remote(err)
	}

	view := model.NewCartView(lines)
	s.cache.Set(ctx, token, view)
	return view, nil
}

// Add creates a cart item. Price is captured here and never re-derived
// from the product afterwards.
func (s *CartService) Add(ctx context.Context, params AddToCartParams) (*model.CartItem, error) {
	if !session.ValidateFormat(params.Token) {
		return nil, apperrors.InvalidSession()
	}
	if params.ProductID == "" {
		return nil, apperrors.MissingRequired("productId")
	}
	if params.Quantity < 1 {
		return nil, apperrors.InvalidInput("quantity", "must be at least 1")
	}
	if params.Price <= 0 {
		return nil, apperrors.InvalidInput("price", "must be positive")
	}

	var rawOptions *json.RawMessage
	if params.CustomOptions != nil {
		if err := params.CustomOptions.Validate(); err != nil {
			return nil, apperrors.InvalidInput("customOptions", err.Error())
		}
		encoded, err := json.Marshal(params.CustomOptions)
		if err != nil {
			return nil, apperrors.InvalidInput("customOptions", err.Error())
		}
		raw := json.RawMessage(encoded)
		rawOptions = &raw
	}

	item, err := s.cartRepo.Insert(ctx, model.CreateCartItemParams{
		SessionID:     params.Token,
		ProductID:     params.ProductID,
		Quantity:      params.Quantity,
		Price:         params.Price,
		SelectedColor: params.SelectedColor,
		SelectedSize:  params.SelectedSize,
		CustomOptions: rawOptions,
	})
	if err != nil {
		return nil, apperrors.Remote(err)
	}

	s.cache.Invalidate(ctx, params.Token)

	log.Debug().
		Str("itemId", item.ID).
		Int("quantity", item.Quantity).
		Msg("cart item added")

	return item, nil
}

// UpdateQuantity sets a cart item's quantity. The update is scoped by
// item id and session token in a single statement, so ownership is
// checked atomically with the write.
func (s *CartService) UpdateQuantity(ctx context.Context, token, itemID string, quantity int) (*model.CartItem, error) {
	if !session.ValidateFormat(token) {
		return nil, apperrors.InvalidSession()
	}
	if itemID == "" {
		return nil, apperrors.MissingRequired("itemId")
	}
	if uuid.Validate(itemID) != nil {
		return nil, apperrors.InvalidInput("itemId", "must be a valid id")
	}
	if quantity < 1 {
		// Rejected, never clamped, and never sent to the store.
		return nil, apperrors.InvalidInput("quantity", "must be at least 1")
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, itemID, token, quantity)
	if err != nil {
		return nil, apperrors.Remote(err)
	}
	if item == nil {
		s.auditOwnershipMiss(ctx, token, itemID, "update")
		return nil, apperrors.Remote(fmt.Errorf("cart item update affected no rows"))
	}

	s.cache.Invalidate(ctx, token)
	return item, nil
}

// Remove deletes a cart item, scoped by item id and session token.
func (s *CartService) Remove(ctx context.Context, token, itemID string) error {
	if !session.ValidateFormat(token) {
		return apperrors.InvalidSession()
	}
	if itemID == "" {
		return apperrors.MissingRequired("itemId")
	}
	if uuid.Validate(itemID) != nil {
		return apperrors.InvalidInput("itemId", "must be a valid id")
	}

	affected, err := s.cartRepo.Delete(ctx, itemID, token)
	if err != nil {
		return apperrors.Remote(err)
	}
	if affected == 0 {
		s.auditOwnershipMiss(ctx, token, itemID, "remove")
		return apperrors.Remote(fmt.Errorf("cart item delete affected no rows"))
	}

	s.cache.Invalidate(ctx, token)
	return nil
}

// auditOwnershipMiss records a mutation that matched no row for the
// caller's session. That is either a gone item or a cross-session probe
// against guessed item ids; either way it is worth an audit trail.
func (s *CartService) auditOwnershipMiss(ctx context.Context, token, itemID, operation string) {
	audit.Log(ctx, audit.Event{
		Type: audit.EventOwnershipMismatch,
		Details: map[string]interface{}{
			"sessionHash": session.Hash(token),
			"itemId":      itemID,
			"operation":   operation,
		},
	})
}
