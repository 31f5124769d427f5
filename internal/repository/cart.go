package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/printworks/storefront-server-go/internal/model"
)

// CartItemRepository is the data access layer for the cart_items
// collection. Every read and write that targets existing rows is scoped
// by session token in the same statement that performs the operation, so
// ownership is checked atomically with the action.
type CartItemRepository interface {
	ListBySession(ctx context.Context, sessionID string) ([]model.CartLine, error)
	Insert(ctx context.Context, params model.CreateCartItemParams) (*model.CartItem, error)
	// UpdateQuantity returns nil without error when no row matches both
	// the item id and the session token.
	UpdateQuantity(ctx context.Context, itemID, sessionID string, quantity int) (*model.CartItem, error)
	// Delete returns the number of rows removed; zero means the item does
	// not exist or belongs to another session.
	Delete(ctx context.Context, itemID, sessionID string) (int64, error)
	DeleteStale(ctx context.Context, olderThan time.Time) (int64, error)
	// WithTx returns a new repository that uses the given transaction
	WithTx(tx *sqlx.Tx) CartItemRepository
}

// cartDB is an interface satisfied by both *sqlx.DB and *sqlx.Tx
type cartDB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type cartItemRepo struct {
	db cartDB
}

func NewCartItemRepository(db *sqlx.DB) CartItemRepository {
	return &cartItemRepo{db: db}
}

func (r *cartItemRepo) WithTx(tx *sqlx.Tx) CartItemRepository {
	return &cartItemRepo{db: tx}
}

func (r *cartItemRepo) ListBySession(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := r.db.SelectContext(ctx, &lines, `
		SELECT ci.*,
			p.name AS product_name,
			p.slug AS product_slug,
			p.images AS product_images,
			p.base_price AS product_base_price
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.session_id = $1
		ORDER BY ci.created_at
	`, sessionID)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartItemRepo) Insert(ctx context.Context, params model.CreateCartItemParams) (*model.CartItem, error) {
	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	var item model.CartItem
	err := r.db.GetContext(ctx, &item, `
		INSERT INTO cart_items (id, session_id, product_id, quantity, price, selected_color, selected_size, custom_options)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING *
	`, id, params.SessionID, params.ProductID, params.Quantity, params.Price,
		params.SelectedColor, params.SelectedSize, rawOrNil(params.CustomOptions))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepo) UpdateQuantity(ctx context.Context, itemID, sessionID string, quantity int) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.GetContext(ctx, &item, `
		UPDATE cart_items SET
			quantity = $3,
			updated_at = NOW()
		WHERE id = $1 AND session_id = $2
		RETURNING *
	`, itemID, sessionID, quantity)
	return HandleNotFound(&item, err)
}

func (r *cartItemRepo) Delete(ctx context.Context, itemID, sessionID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1 AND session_id = $2
	`, itemID, sessionID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *cartItemRepo) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE updated_at < $1
	`, olderThan)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// rawOrNil maps an absent JSON payload to a SQL NULL.
func rawOrNil(raw *json.RawMessage) interface{} {
	if raw == nil {
		return nil
	}
	return []byte(*raw)
}
