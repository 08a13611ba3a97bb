package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) ListForSeller(ctx context.Context, sellerID string) ([]entities.Order, error) {
	// seq - порядок вставки, разрешает совпадения created_at
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("created_at DESC", "seq ASC").
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, OrderToEntity(row))
	}
	return result, nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, sellerID, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID, "seller_id": sellerID}).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(row), nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, sellerID, orderID string, from, to entities.Status) (entities.Order, error) {
	query, args := r.updateStatusQuery(sellerID, orderID, from, to)

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, r.missReason(ctx, sellerID, orderID)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	return OrderToEntity(row), nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, sellerID, orderID string, from entities.Status) error {
	query, args := r.deleteOrderQuery(sellerID, orderID, from)

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n == 0 {
		return r.missReason(ctx, sellerID, orderID)
	}
	return nil
}

// Операция идемпотентна: повторное событие о заказе игнорируется.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.BuyerID, o.SellerID, o.ListingID,
			o.Quantity, o.Unit, o.TotalAmount,
			string(o.Status), string(o.PaymentStatus), nullString(o.DeliveryAddress), o.CreatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// Запись проходит, только если статус в базе всё ещё from.
func (r *postgresRepo) updateStatusQuery(sellerID, orderID string, from, to entities.Status) (string, []any) {
	return r.qb.Update("orders").
		Set("status", string(to)).
		Where(sq.Eq{"id": orderID, "seller_id": sellerID, "status": string(from)}).
		Suffix(returning()).
		MustSql()
}

func (r *postgresRepo) deleteOrderQuery(sellerID, orderID string, from entities.Status) (string, []any) {
	return r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID, "seller_id": sellerID, "status": string(from)}).
		MustSql()
}

// missReason отличает отсутствующий заказ от заказа, статус которого уже
// сменился, когда условная запись ничего не затронула.
func (r *postgresRepo) missReason(ctx context.Context, sellerID, orderID string) error {
	_, err := r.GetOrder(ctx, sellerID, orderID)
	if err != nil {
		return err
	}
	return entities.ErrConflict
}

func returning() string {
	return "RETURNING " + strings.Join(orderColumns, ", ")
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
