package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"posterseed/internal/db"
	"posterseed/internal/schema"
)

// NewTestDB returns an in-memory SQLite database with the products table
// already created. It is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	ddl, err := schema.ProductsDDL(schema.DialectSQLite, "products")
	if err != nil {
		t.Fatalf("products ddl: %v", err)
	}
	if _, err := conn.ExecContext(context.Background(), ddl); err != nil {
		t.Fatalf("create products table: %v", err)
	}

	return conn
}
