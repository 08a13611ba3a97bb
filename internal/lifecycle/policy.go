package lifecycle

import (
	"fmt"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
)

// Policy определяет судьбу записи заказа после доставки.
// В развёртывании действует ровно одна политика.
type Policy string

const (
	RetainDelivered Policy = "retain"
	DeleteDelivered Policy = "delete"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case RetainDelivered, DeleteDelivered:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown retention policy %q", entities.ErrValidation, s)
}

// Removes сообщает, удаляется ли запись при переходе в status.
// Отменённые заказы всегда сохраняются.
func (p Policy) Removes(status entities.Status) bool {
	return p == DeleteDelivered && status == entities.StatusDelivered
}
