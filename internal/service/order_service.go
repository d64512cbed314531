package service

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"sofa-shop/internal/mailer"
	"sofa-shop/internal/metrics"
	"sofa-shop/internal/model"
	"sofa-shop/internal/reference"
	"sofa-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// totalTolerance is the largest accepted drift between the caller's total
// and the sum of the line items, covering float rounding on either side.
const totalTolerance = 0.01

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	mail      mailer.Mailer
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, mail mailer.Mailer, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		mail:      mail,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder validates checkout input, recomputes the total from the cart
// tuples, and creates the order with its line items in one transaction.
// A confirmation email is sent asynchronously after commit; delivery
// failures are logged and never surfaced.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.CheckoutRequest) (*model.OrderConfirmation, error) {
	if err := validateCheckout(req); err != nil {
		s.logger.Warn().Err(err).Msg("checkout validation failed")
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		TotalAmount:     req.TotalAmount,
		Status:          model.StatusPendingCOD,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if instructions := strings.TrimSpace(req.SpecialInstructions); instructions != "" {
		order.SpecialInstructions = &instructions
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			VariantID:       item.VariantID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.UnitPrice,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	metrics.OrdersPlaced.Inc()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(items)).
		Float64("total", order.TotalAmount).
		Msg("order placed")

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.mail.SendOrderConfirmation(sendCtx, order); err != nil {
			s.logger.Warn().Err(err).Str("order_id", order.ID.String()).Msg("failed to send order confirmation email")
		}
	}()

	return &model.OrderConfirmation{
		OrderID:   order.ID,
		Reference: reference.FromOrderID(order.ID),
	}, nil
}

// TrackOrder resolves a short reference code via a bounded primary-key
// range scan. Malformed codes are rejected before any query is issued.
func (s *orderService) TrackOrder(ctx context.Context, code string) (*model.TrackedOrder, error) {
	normalized, err := reference.Normalize(code)
	if err != nil {
		s.logger.Debug().Str("code", code).Msg("malformed order reference")
		return nil, err
	}

	lo, hi, err := reference.Bounds(normalized)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindInKeyRange(ctx, lo, hi)
	if err != nil {
		s.logger.Error().Err(err).Str("code", normalized).Msg("failed to look up order")
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("code", normalized).Msg("no order for reference")
		return nil, model.ErrOrderNotFound
	}

	items, err := s.orderRepo.GetTrackedItems(ctx, order.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to load order items")
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	return &model.TrackedOrder{
		Reference:   reference.FromOrderID(order.ID),
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}, nil
}

// ConfirmOrder sets the order to confirmed regardless of its current
// status. Repeat invocations set the same value again; the emailed link
// may be clicked more than once.
func (s *orderService) ConfirmOrder(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, model.StatusConfirmed)
}

// UpdateStatus sets any member of the fixed status set on an order. Legal
// transitions are not enforced; any status may replace any other.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !model.ValidOrderStatus(status) {
		s.logger.Warn().Str("status", status).Msg("unknown order status")
		return model.ErrInvalidStatus
	}
	return s.setStatus(ctx, id, status)
}

// List retrieves orders newest first with their items.
func (s *orderService) List(ctx context.Context, limit, offset int) ([]model.AdminOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := s.orderRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// setStatus persists the status change and then notifies the customer,
// best-effort. Notification failure never rolls back the transition.
func (s *orderService) setStatus(ctx context.Context, id uuid.UUID, status string) error {
	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	order, _, err := s.orderRepo.GetByID(ctx, id)
	if err != nil || order == nil {
		s.logger.Warn().
			Err(err).
			Str("order_id", id.String()).
			Msg("status updated but order could not be reloaded for notification")
		return nil
	}

	if err := s.mail.SendStatusUpdate(ctx, order, status); err != nil {
		s.logger.Warn().
			Err(err).
			Str("order_id", id.String()).
			Str("status", status).
			Msg("failed to send status update email")
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return nil
}

// validateCheckout applies the checkout rules in order and returns the
// first violation.
func validateCheckout(req *model.CheckoutRequest) error {
	if req == nil {
		return model.ErrEmptyCart
	}

	if len(strings.TrimSpace(req.CustomerName)) < 2 {
		return model.ErrNameTooShort
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		return model.ErrInvalidEmail
	}

	if len(strings.TrimSpace(req.CustomerPhone)) < 8 {
		return model.ErrInvalidPhone
	}

	if len(strings.TrimSpace(req.ShippingAddress)) < 10 {
		return model.ErrAddressTooShort
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyCart
	}

	var computed float64
	for _, item := range req.Items {
		if item.VariantID == uuid.Nil {
			return model.ErrMissingVariant
		}
		if item.Quantity < 1 {
			return model.ErrInvalidQuantity
		}
		computed += float64(item.Quantity) * item.UnitPrice
	}

	if math.Abs(computed-req.TotalAmount) > totalTolerance {
		return model.ErrTotalMismatch
	}

	return nil
}
