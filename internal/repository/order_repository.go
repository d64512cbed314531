package repository

import (
	"context"
	"fmt"
	"time"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const orderColumns = `id, customer_name, customer_email, customer_phone, shipping_address, special_instructions, total_amount, status, created_at, updated_at`

// orderRepository implements OrderRepository using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, customer_email, customer_phone, shipping_address, special_instructions, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := tx.Exec(ctx, query,
		order.ID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.ShippingAddress, order.SpecialInstructions, order.TotalAmount,
		order.Status, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts multiple order items within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, variant_id, quantity, price_at_purchase)
		VALUES ($1, $2, $3, $4, $5)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.OrderID, item.VariantID, item.Quantity, item.PriceAtPurchase)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", items[i].OrderID.String()).
				Str("variant_id", items[i].VariantID.String()).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	orderQuery := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
		&order.ShippingAddress, &order.SpecialInstructions, &order.TotalAmount,
		&order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return &order, items, nil
}

// FindInKeyRange retrieves at most one order whose key falls within the
// inclusive [lo, hi] range. The scan rides the primary-key index; when
// several orders share the prefix, whichever sorts first wins.
func (r *orderRepository) FindInKeyRange(ctx context.Context, lo, hi uuid.UUID) (*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE id >= $1 AND id <= $2
		ORDER BY id
		LIMIT 1
	`, orderColumns)

	var order model.Order
	err := r.pool.QueryRow(ctx, query, lo, hi).Scan(
		&order.ID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
		&order.ShippingAddress, &order.SpecialInstructions, &order.TotalAmount,
		&order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().
				Str("lo", lo.String()).
				Str("hi", hi.String()).
				Msg("no order in key range")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query order by key range")
		return nil, fmt.Errorf("failed to query order by key range: %w", err)
	}

	return &order, nil
}

// GetTrackedItems retrieves an order's line items joined with variant
// colour and product title.
func (r *orderRepository) GetTrackedItems(ctx context.Context, orderID uuid.UUID) ([]model.TrackedItem, error) {
	query := `
		SELECT p.title, v.color, oi.quantity, oi.price_at_purchase
		FROM order_items oi
		JOIN product_variants v ON v.id = oi.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to query tracked items")
		return nil, fmt.Errorf("failed to query tracked items: %w", err)
	}
	defer rows.Close()

	var items []model.TrackedItem
	for rows.Next() {
		var item model.TrackedItem
		if err := rows.Scan(&item.ProductTitle, &item.Color, &item.Quantity, &item.PriceAtPurchase); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan tracked item row")
			return nil, fmt.Errorf("failed to scan tracked item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating tracked item rows")
		return nil, fmt.Errorf("error iterating tracked items: %w", err)
	}

	return items, nil
}

// UpdateStatus persists a new status. Any status may replace any other;
// legal-transition checking is deliberately absent.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", status).
			Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("order_id", id.String()).Msg("order not found for status update")
		return model.ErrOrderNotFound
	}

	r.logger.Debug().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return nil
}

// List retrieves orders newest first with their items.
func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]model.AdminOrder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, orderColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.AdminOrder
	for rows.Next() {
		var o model.Order
		err := rows.Scan(
			&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.ShippingAddress, &o.SpecialInstructions, &o.TotalAmount,
			&o.Status, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, model.AdminOrder{Order: o})
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for i := range orders {
		items, err := r.getItems(ctx, orders[i].Order.ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// getItems retrieves the raw line items of an order.
func (r *orderRepository) getItems(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	query := `
		SELECT id, order_id, variant_id, quantity, price_at_purchase
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.VariantID, &item.Quantity, &item.PriceAtPurchase); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}
