package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/lifecycle"
	"github.com/SergeyBogomolovv/seller-orders/pkg/trm"
	"github.com/SergeyBogomolovv/seller-orders/pkg/utils"
)

// OrderRepo хранилище заказов. Каждый вызов ограничен одним продавцом,
// заказ другого продавца считается отсутствующим.
type OrderRepo interface {
	ListForSeller(ctx context.Context, sellerID string) ([]entities.Order, error)
	GetOrder(ctx context.Context, sellerID, orderID string) (entities.Order, error)

	// Запись условная: ErrConflict, если статус уже не from.
	UpdateStatus(ctx context.Context, sellerID, orderID string, from, to entities.Status) (entities.Order, error)
	DeleteOrder(ctx context.Context, sellerID, orderID string, from entities.Status) error

	// Операция идемпотентна, т.к. используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error
}

// Ошибки, которые бессмысленно повторять
var permanentErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrInvalidTransition,
	entities.ErrConflict,
	entities.ErrValidation,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	enricher  *Enricher
	policy    lifecycle.Policy
	retry     utils.RetryConfig
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	enricher *Enricher,
	policy lifecycle.Policy,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		enricher:  enricher,
		policy:    policy,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

// SellerOrders возвращает обогащённые заказы продавца от новых к старым.
// Ошибка возможна только при чтении из хранилища.
func (s *orderService) SellerOrders(ctx context.Context, sellerID string) ([]entities.OrderView, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListForSeller(ctx, sellerID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, permanentErrors...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return s.enricher.Enrich(ctx, orders), nil
}

func (s *orderService) OrderView(ctx context.Context, sellerID, orderID string) (entities.OrderView, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrder(ctx, sellerID, orderID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, permanentErrors...); err != nil {
		return entities.OrderView{}, err
	}

	return s.enricher.Enrich(ctx, []entities.Order{order})[0], nil
}

// Transition переводит заказ в запрошенный статус. Возвращает обновлённый
// заказ или nil, если политика хранения его удалила. При ошибке заказ
// в хранилище не меняется.
func (s *orderService) Transition(ctx context.Context, sellerID, orderID string, to entities.Status) (*entities.Order, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", entities.ErrValidation, to)
	}

	var (
		from    entities.Status
		updated *entities.Order
	)

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			current, err := s.repo.GetOrder(ctx, sellerID, orderID)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}
			from = current.Status

			if err := lifecycle.Validate(current.Status, to); err != nil {
				return err
			}

			if s.policy.Removes(to) {
				if err := s.repo.DeleteOrder(ctx, sellerID, orderID, current.Status); err != nil {
					return fmt.Errorf("failed to delete order: %w", err)
				}
				updated = nil
				return nil
			}

			order, err := s.repo.UpdateStatus(ctx, sellerID, orderID, current.Status, to)
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}
			updated = &order
			return nil
		})
	}

	err := utils.Retry(ctx, s.retry, fn, permanentErrors...)
	transitionsTotal.WithLabelValues(string(from), string(to), outcome(err)).Inc()
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", orderID),
		slog.String("seller_id", sellerID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.Bool("removed", updated == nil),
	)
	return updated, nil
}

func (s *orderService) Confirm(ctx context.Context, sellerID, orderID string) (*entities.Order, error) {
	return s.Transition(ctx, sellerID, orderID, entities.StatusConfirmed)
}

func (s *orderService) Cancel(ctx context.Context, sellerID, orderID string) (*entities.Order, error) {
	return s.Transition(ctx, sellerID, orderID, entities.StatusCancelled)
}

func (s *orderService) Ship(ctx context.Context, sellerID, orderID string) (*entities.Order, error) {
	return s.Transition(ctx, sellerID, orderID, entities.StatusShipped)
}

func (s *orderService) Deliver(ctx context.Context, sellerID, orderID string) (*entities.Order, error) {
	return s.Transition(ctx, sellerID, orderID, entities.StatusDelivered)
}

// SaveOrder сохраняет новый заказ. Статус от продюсера игнорируется,
// новый заказ всегда pending.
func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	if err := validateNewOrder(order); err != nil {
		return err
	}
	order.Status = entities.StatusPending
	if order.PaymentStatus == "" {
		order.PaymentStatus = entities.PaymentPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	fn := func() error {
		return s.repo.SaveOrder(ctx, order)
	}
	if err := utils.Retry(ctx, s.retry, fn, permanentErrors...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.DebugContext(ctx, "order saved", slog.String("order_id", order.ID))
	return nil
}

func validateNewOrder(o entities.Order) error {
	switch {
	case o.ID == "", o.BuyerID == "", o.SellerID == "", o.ListingID == "":
		return fmt.Errorf("%w: order, buyer, seller and listing ids are required", entities.ErrValidation)
	case !o.Quantity.IsPositive():
		return fmt.Errorf("%w: quantity must be positive", entities.ErrValidation)
	case o.TotalAmount.IsNegative():
		return fmt.Errorf("%w: total amount must not be negative", entities.ErrValidation)
	case o.Unit == "":
		return fmt.Errorf("%w: unit is required", entities.ErrValidation)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrInvalidTransition):
		return "invalid"
	case errors.Is(err, entities.ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrConflict):
		return "conflict"
	case errors.Is(err, entities.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}
