package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing. Mirrors
// scripts/schema.sql.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) NOT NULL UNIQUE,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
			title VARCHAR(255) NOT NULL,
			slug VARCHAR(255) NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			base_price NUMERIC(10, 2) NOT NULL CHECK (base_price >= 0),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			specifications JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS product_variants (
			id UUID PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			sku VARCHAR(100) NOT NULL,
			color VARCHAR(100) NOT NULL,
			stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
			price_adjustment NUMERIC(10, 2) NOT NULL DEFAULT 0,
			image_url TEXT
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(50) NOT NULL,
			shipping_address TEXT NOT NULL,
			special_instructions TEXT,
			total_amount NUMERIC(10, 2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending_cod',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			variant_id UUID NOT NULL REFERENCES product_variants(id) ON DELETE RESTRICT,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price_at_purchase NUMERIC(10, 2) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS reviews (
			id UUID PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			customer_name VARCHAR(255) NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeededCatalog holds the identities created by SeedCatalog.
type SeededCatalog struct {
	CategoryID uuid.UUID
	ProductID  uuid.UUID
	Slug       string
	VariantA   uuid.UUID // £100.00
	VariantB   uuid.UUID // £50.00
}

// SeedCatalog inserts one category with one product and two variants.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) SeededCatalog {
	t.Helper()

	ctx := context.Background()

	seeded := SeededCatalog{
		CategoryID: uuid.New(),
		ProductID:  uuid.New(),
		Slug:       "oslo-3-seater-sofa",
		VariantA:   uuid.New(),
		VariantB:   uuid.New(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name, slug) VALUES ($1, 'Sofas', 'sofas')`,
		seeded.CategoryID,
	)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	specs, err := json.Marshal(model.Specifications{
		Style:      "Scandinavian",
		Dimensions: "210 x 95 x 80 cm",
		Material:   "Linen blend",
	})
	if err != nil {
		t.Fatalf("failed to marshal specifications: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO products (id, category_id, title, slug, description, base_price, specifications)
		VALUES ($1, $2, 'Oslo 3-Seater Sofa', $3, 'A deep three-seater.', 100.00, $4)
	`, seeded.ProductID, seeded.CategoryID, seeded.Slug, specs)
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	variants := []struct {
		id    uuid.UUID
		sku   string
		color string
		adj   float64
	}{
		{seeded.VariantA, "OSLO-3S-GRY", "Slate Grey", 0},
		{seeded.VariantB, "OSLO-3S-GRN", "Forest Green", -50.00},
	}
	for _, v := range variants {
		_, err := pool.Exec(ctx, `
			INSERT INTO product_variants (id, product_id, sku, color, stock_quantity, price_adjustment)
			VALUES ($1, $2, $3, $4, 10, $5)
		`, v.id, seeded.ProductID, v.sku, v.color, v.adj)
		if err != nil {
			t.Fatalf("failed to seed variant %s: %v", v.sku, err)
		}
	}

	return seeded
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "reviews", "product_variants", "products", "categories", "admins"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
