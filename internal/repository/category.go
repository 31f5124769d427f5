package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/printworks/storefront-server-go/internal/model"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	WithTx(tx *sqlx.Tx) CategoryRepository
}

type categoryRepo struct {
	db cartDB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) WithTx(tx *sqlx.Tx) CategoryRepository {
	return &categoryRepo{db: tx}
}

func (r *categoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.SelectContext(ctx, &categories, `
		SELECT * FROM categories ORDER BY name
	`)
	return categories, err
}

func (r *categoryRepo) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	err := r.db.GetContext(ctx, &category, `
		SELECT * FROM categories WHERE slug = $1
	`, slug)
	return HandleNotFound(&category, err)
}
