package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
)

// MemoryRepo хранит заказы в памяти процесса. Порядок и условные записи
// работают так же, как в postgres.
type MemoryRepo struct {
	mu     sync.RWMutex
	orders map[string]memoryRow
	seq    int64
}

type memoryRow struct {
	order entities.Order
	seq   int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{orders: make(map[string]memoryRow)}
}

func (r *MemoryRepo) ListForSeller(_ context.Context, sellerID string) ([]entities.Order, error) {
	r.mu.RLock()
	rows := make([]memoryRow, 0)
	for _, row := range r.orders {
		if row.order.SellerID == sellerID {
			rows = append(rows, row)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(rows, func(a, b memoryRow) int {
		if c := b.order.CreatedAt.Compare(a.order.CreatedAt); c != 0 {
			return c
		}
		if a.seq < b.seq {
			return -1
		}
		if a.seq > b.seq {
			return 1
		}
		return 0
	})

	result := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.order)
	}
	return result, nil
}

func (r *MemoryRepo) GetOrder(_ context.Context, sellerID, orderID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.orders[orderID]
	if !ok || row.order.SellerID != sellerID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return row.order, nil
}

func (r *MemoryRepo) UpdateStatus(_ context.Context, sellerID, orderID string, from, to entities.Status) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, err := r.match(sellerID, orderID, from)
	if err != nil {
		return entities.Order{}, err
	}
	row.order.Status = to
	r.orders[orderID] = row
	return row.order, nil
}

func (r *MemoryRepo) DeleteOrder(_ context.Context, sellerID, orderID string, from entities.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.match(sellerID, orderID, from); err != nil {
		return err
	}
	delete(r.orders, orderID)
	return nil
}

func (r *MemoryRepo) SaveOrder(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return nil
	}
	r.seq++
	r.orders[o.ID] = memoryRow{order: o, seq: r.seq}
	return nil
}

func (r *MemoryRepo) match(sellerID, orderID string, from entities.Status) (memoryRow, error) {
	row, ok := r.orders[orderID]
	if !ok || row.order.SellerID != sellerID {
		return memoryRow{}, entities.ErrOrderNotFound
	}
	if row.order.Status != from {
		return memoryRow{}, entities.ErrConflict
	}
	return row, nil
}
