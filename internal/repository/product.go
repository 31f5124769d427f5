package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/printworks/storefront-server-go/internal/model"
)

type ProductRepository interface {
	// ListActive returns active products, newest first, optionally
	// filtered to one category slug.
	ListActive(ctx context.Context, categorySlug string, limit, offset int) ([]model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	WithTx(tx *sqlx.Tx) ProductRepository
}

type productRepo struct {
	db cartDB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) WithTx(tx *sqlx.Tx) ProductRepository {
	return &productRepo{db: tx}
}

func (r *productRepo) ListActive(ctx context.Context, categorySlug string, limit, offset int) ([]model.Product, error) {
	var products []model.Product

	if categorySlug != "" {
		err := r.db.SelectContext(ctx, &products, `
			SELECT p.* FROM products p
			JOIN categories c ON c.id = p.category_id
			WHERE p.is_active AND c.slug = $1
			ORDER BY p.created_at DESC
			LIMIT $2 OFFSET $3
		`, categorySlug, limit, offset)
		return products, err
	}

	err := r.db.SelectContext(ctx, &products, `
		SELECT * FROM products
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	return products, err
}

func (r *productRepo) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.GetContext(ctx, &product, `
		SELECT * FROM products
		WHERE slug = $1 AND is_active
	`, slug)
	return HandleNotFound(&product, err)
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.GetContext(ctx, &product, `
		SELECT * FROM products WHERE id = $1
	`, id)
	return HandleNotFound(&product, err)
}
