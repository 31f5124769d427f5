package model

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// CartItem is a row of the cart_items collection. The session token is
// never serialized to clients.
type CartItem struct {
	ID            string           `db:"id" json:"id"`
	SessionID     string           `db:"session_id" json:"-"`
	ProductID     *string          `db:"product_id" json:"productId,omitempty"`
	Quantity      int              `db:"quantity" json:"quantity"`
	Price         float64          `db:"price" json:"price"`
	SelectedColor *string          `db:"selected_color" json:"selectedColor,omitempty"`
	SelectedSize  *string          `db:"selected_size" json:"selectedSize,omitempty"`
	CustomOptions *json.RawMessage `db:"custom_options" json:"customOptions,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updatedAt"`
}

// CartLine is a cart item joined with a minimal product projection.
// Projection columns are nullable: the referenced product may have been
// deleted out from under the cart row.
type CartLine struct {
	CartItem
	ProductName      *string        `db:"product_name" json:"productName,omitempty"`
	ProductSlug      *string        `db:"product_slug" json:"productSlug,omitempty"`
	ProductImages    pq.StringArray `db:"product_images" json:"productImages,omitempty"`
	ProductBasePrice *float64       `db:"product_base_price" json:"productBasePrice,omitempty"`
}

// LineTotal is quantity times the price captured at add-time, not the
// product's current price.
func (l *CartLine) LineTotal() float64 {
	return float64(l.Quantity) * l.Price
}

// CartView is the derived, cacheable view of one session's cart.
type CartView struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
}

func NewCartView(lines []CartLine) *CartView {
	view := &CartView{Lines: lines}
	if view.Lines == nil {
		view.Lines = []CartLine{}
	}
	for i := range lines {
		view.ItemCount += lines[i].Quantity
		view.Subtotal += lines[i].LineTotal()
	}
	return view
}

type CreateCartItemParams struct {
	ID            string
	SessionID     string
	ProductID     string
	Quantity      int
	Price         float64
	SelectedColor *string
	SelectedSize  *string
	CustomOptions *json.RawMessage
}
