package model

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID             string         `db:"id" json:"id"`
	CategoryID     *string        `db:"category_id" json:"categoryId,omitempty"`
	Name           string         `db:"name" json:"name"`
	Slug           string         `db:"slug" json:"slug"`
	Description    *string        `db:"description" json:"description,omitempty"`
	BasePrice      float64        `db:"base_price" json:"basePrice"`
	Colors         pq.StringArray `db:"colors" json:"colors,omitempty"`
	Sizes          pq.StringArray `db:"sizes" json:"sizes,omitempty"`
	Images         pq.StringArray `db:"images" json:"images,omitempty"`
	IsActive       bool           `db:"is_active" json:"isActive"`
	IsCustomizable bool           `db:"is_customizable" json:"isCustomizable"`
	StockQuantity  *int           `db:"stock_quantity" json:"stockQuantity,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

type Category struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description,omitempty"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
