package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/printworks/storefront-server-go/internal/database"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL and
// truncates the cart tables. Tests are skipped when the variable is unset.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository integration tests")
	}

	db, err := database.Connect(dsn)
	require.NoError(t, err)

	_, err = db.Exec(`TRUNCATE cart_items`)
	require.NoError(t, err)
	_, err = db.Exec(`TRUNCATE products CASCADE`)
	require.NoError(t, err)
	_, err = db.Exec(`TRUNCATE categories CASCADE`)
	require.NoError(t, err)

	return db
}

func insertTestProduct(t *testing.T, db *database.DB, id, name, slug string, basePrice float64) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO products (id, name, slug, base_price, is_active, images)
		VALUES ($1, $2, $3, $4, true, '{}')
	`, id, name, slug, basePrice)
	require.NoError(t, err)
}
