package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printworks/storefront-server-go/internal/model"
	"github.com/printworks/storefront-server-go/internal/session"
)

func TestCartItemRepository_Insert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewCartItemRepository(db.DB)
	ctx := context.Background()

	productID := uuid.NewString()
	insertTestProduct(t, db, productID, "Classic Tee", "classic-tee", 19.99)

	token := session.GenerateToken()
	item, err := repo.Insert(ctx, model.CreateCartItemParams{
		SessionID: token,
		ProductID: productID,
		Quantity:  2,
		Price:     19.99,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, token, item.SessionID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 19.99, item.Price)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestCartItemRepository_ListBySession(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewCartItemRepository(db.DB)
	ctx := context.Background()

	productID := uuid.NewString()
	insertTestProduct(t, db, productID, "Classic Tee", "classic-tee", 19.99)

	tokenA := session.GenerateToken()
	tokenB := session.GenerateToken()

	itemA, err := repo.Insert(ctx, model.CreateCartItemParams{
		SessionID: tokenA, ProductID: productID, Quantity: 1, Price: 19.99,
	})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, model.CreateCartItemParams{
		SessionID: tokenB, ProductID: productID, Quantity: 3, Price: 19.99,
	})
	require.NoError(t, err)

	t.Run("never returns another session's items", func(t *testing.T) {
		lines, err := repo.ListBySession(ctx, tokenA)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, itemA.ID, lines[0].ID)
	})

	t.Run("joins product projection", func(t *testing.T) {
		lines, err := repo.ListBySession(ctx, tokenA)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		require.NotNil(t, lines[0].ProductName)
		assert.Equal(t, "Classic Tee", *lines[0].ProductName)
		require.NotNil(t, lines[0].ProductSlug)
		assert.Equal(t, "classic-tee", *lines[0].ProductSlug)
	})

	t.Run("empty for unknown session", func(t *testing.T) {
		lines, err := repo.ListBySession(ctx, session.GenerateToken())
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCartItemRepository_UpdateQuantity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewCartItemRepository(db.DB)
	ctx := context.Background()

	productID := uuid.NewString()
	insertTestProduct(t, db, productID, "Classic Tee", "classic-tee", 19.99)

	token := session.GenerateToken()
	item, err := repo.Insert(ctx, model.CreateCartItemParams{
		SessionID: token, ProductID: productID, Quantity: 2, Price: 19.99,
	})
	require.NoError(t, err)

	t.Run("updates quantity for owning session", func(t *testing.T) {
		updated, err := repo.UpdateQuantity(ctx, item.ID, token, 3)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 3, updated.Quantity)

		lines, err := repo.ListBySession(ctx, token)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("returns nil for another session's token", func(t *testing.T) {
		updated, err := repo.UpdateQuantity(ctx, item.ID, session.GenerateToken(), 5)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("price stays as captured at add-time", func(t *testing.T) {
		updated, err := repo.UpdateQuantity(ctx, item.ID, token, 4)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 19.99, updated.Price)
	})
}

func TestCartItemRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewCartItemRepository(db.DB)
	ctx := context.Background()

	productID := uuid.NewString()
	insertTestProduct(t, db, productID, "Classic Tee", "classic-tee", 19.99)

	token := session.GenerateToken()
	item, err := repo.Insert(ctx, model.CreateCartItemParams{
		SessionID: token, ProductID: productID, Quantity: 1, Price: 19.99,
	})
	require.NoError(t, err)

	t.Run("removes nothing for another session's token", func(t *testing.T) {
		affected, err := repo.Delete(ctx, item.ID, session.GenerateToken())
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("removes the owned row", func(t *testing.T) {
		affected, err := repo.Delete(ctx, item.ID, token)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		lines, err := repo.ListBySession(ctx, token)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCartItemRepository_DeleteStale(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewCartItemRepository(db.DB)
	ctx := context.Background()

	productID := uuid.NewString()
	insertTestProduct(t, db, productID, "Classic Tee", "classic-tee", 19.99)

	token := session.GenerateToken()
	_, err := repo.Insert(ctx, model.CreateCartItemParams{
		SessionID: token, ProductID: productID, Quantity: 1, Price: 19.99,
	})
	require.NoError(t, err)

	t.Run("keeps fresh rows", func(t *testing.T) {
		deleted, err := repo.DeleteStale(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("drops rows older than the cutoff", func(t *testing.T) {
		deleted, err := repo.DeleteStale(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.EqualValues(t, 1, deleted)
	})
}
