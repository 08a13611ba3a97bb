package views

import "github.com/SergeyBogomolovv/seller-orders/internal/entities"

// Statused реализуют entities.Order и, через встраивание, entities.OrderView.
type Statused interface {
	OrderStatus() entities.Status
}

// CountPending возвращает число для бейджа "новые заказы".
func CountPending[T Statused](orders []T) int {
	return CountStatus(orders, entities.StatusPending)
}

func CountStatus[T Statused](orders []T, status entities.Status) int {
	n := 0
	for _, o := range orders {
		if o.OrderStatus() == status {
			n++
		}
	}
	return n
}
