// Package lifecycle определяет допустимые смены статуса заказа и то,
// что происходит с заказом в конечном статусе.
package lifecycle

import (
	"fmt"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
)

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
	ActionShip    Action = "ship"
	ActionDeliver Action = "deliver"
)

type edge struct {
	from entities.Status
	to   entities.Status
}

// Все допустимые переходы. Инициирует только продавец.
var transitions = map[edge]Action{
	{entities.StatusPending, entities.StatusConfirmed}: ActionConfirm,
	{entities.StatusPending, entities.StatusCancelled}: ActionCancel,
	{entities.StatusConfirmed, entities.StatusShipped}: ActionShip,
	{entities.StatusShipped, entities.StatusDelivered}: ActionDeliver,
}

var targets = map[Action]entities.Status{
	ActionConfirm: entities.StatusConfirmed,
	ActionCancel:  entities.StatusCancelled,
	ActionShip:    entities.StatusShipped,
	ActionDeliver: entities.StatusDelivered,
}

// TransitionError описывает отклонённую смену статуса.
type TransitionError struct {
	From entities.Status
	To   entities.Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", entities.ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return entities.ErrInvalidTransition
}

// Validate возвращает nil, если переход from -> to разрешён.
func Validate(from, to entities.Status) error {
	if !from.Valid() {
		return fmt.Errorf("%w: unknown current status %q", entities.ErrValidation, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: unknown target status %q", entities.ErrValidation, to)
	}
	if _, ok := transitions[edge{from, to}]; !ok {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// Actions возвращает действия продавца для заказа в данном статусе
// в том порядке, в котором их показывает панель заказа.
func Actions(status entities.Status) []Action {
	switch status {
	case entities.StatusPending:
		return []Action{ActionConfirm, ActionCancel}
	case entities.StatusConfirmed:
		return []Action{ActionShip}
	case entities.StatusShipped:
		return []Action{ActionDeliver}
	default:
		return nil
	}
}

func (a Action) Target() entities.Status {
	return targets[a]
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := targets[a]; !ok {
		return "", fmt.Errorf("%w: unknown action %q", entities.ErrValidation, s)
	}
	return a, nil
}
