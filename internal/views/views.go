// Package views строит два представления заказов продавца из набора,
// который держит вызывающий. Хранилище здесь не используется: набор
// обновляется повторным чтением заказов продавца или через Apply.
package views

import (
	"fmt"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/lifecycle"
)

const SummaryLimit = 5

type SummaryView struct {
	Orders       []entities.OrderView
	PendingCount int
}

// Summary строит виджет дашборда: последние заказы и бейдж.
// orders должны быть отсортированы от новых к старым.
func Summary(orders []entities.OrderView) SummaryView {
	n := min(len(orders), SummaryLimit)
	recent := make([]entities.OrderView, n)
	copy(recent, orders[:n])

	return SummaryView{
		Orders:       recent,
		PendingCount: CountPending(orders),
	}
}

type Filter string

const (
	FilterPending   Filter = "pending"
	FilterConfirmed Filter = "confirmed"
	FilterShipped   Filter = "shipped"
	FilterAll       Filter = "all"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case FilterPending, FilterConfirmed, FilterShipped, FilterAll:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown filter %q", entities.ErrValidation, s)
}

// Matches сообщает, попадает ли заказ с данным статусом во вкладку.
// Вкладка "all" показывает только активные заказы, без delivered и cancelled.
func (f Filter) Matches(status entities.Status) bool {
	if status.Terminal() {
		return false
	}
	if f == FilterAll {
		return true
	}
	return entities.Status(f) == status
}

type Counts struct {
	Pending   int
	Confirmed int
	Shipped   int
	Total     int
}

type ManagementView struct {
	Filter Filter
	Orders []entities.OrderView
	Counts Counts
}

func Management(orders []entities.OrderView, filter Filter) ManagementView {
	filtered := make([]entities.OrderView, 0, len(orders))
	for _, o := range orders {
		if filter.Matches(o.Status) {
			filtered = append(filtered, o)
		}
	}

	return ManagementView{
		Filter: filter,
		Orders: filtered,
		Counts: Counts{
			Pending:   CountPending(orders),
			Confirmed: CountStatus(orders, entities.StatusConfirmed),
			Shipped:   CountStatus(orders, entities.StatusShipped),
			Total:     len(orders),
		},
	}
}

// OrderDetail содержимое панели заказа, открываемой из любого представления.
type OrderDetail struct {
	Order           entities.OrderView
	ShippingAddress string
	Actions         []lifecycle.Action
}

func Detail(order entities.OrderView) OrderDetail {
	return OrderDetail{
		Order:           order,
		ShippingAddress: order.ShippingAddress(),
		Actions:         lifecycle.Actions(order.Status),
	}
}

// Find возвращает заказ из набора по ID.
func Find(orders []entities.OrderView, orderID string) (entities.OrderView, bool) {
	for _, o := range orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return entities.OrderView{}, false
}

// Apply применяет результат перехода к набору заказов. Если updated равен nil,
// запись удалена и убирается из набора. Входной срез не изменяется.
func Apply(orders []entities.OrderView, orderID string, updated *entities.Order) []entities.OrderView {
	out := make([]entities.OrderView, 0, len(orders))
	for _, o := range orders {
		if o.ID != orderID {
			out = append(out, o)
			continue
		}
		if updated == nil {
			continue
		}
		o.Status = updated.Status
		o.PaymentStatus = updated.PaymentStatus
		out = append(out, o)
	}
	return out
}
