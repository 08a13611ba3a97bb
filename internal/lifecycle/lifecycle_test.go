package lifecycle_test

import (
	"testing"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []entities.Status{
	entities.StatusPending,
	entities.StatusConfirmed,
	entities.StatusShipped,
	entities.StatusDelivered,
	entities.StatusCancelled,
}

func TestValidate(t *testing.T) {
	allowed := map[[2]entities.Status]bool{
		{entities.StatusPending, entities.StatusConfirmed}: true,
		{entities.StatusPending, entities.StatusCancelled}: true,
		{entities.StatusConfirmed, entities.StatusShipped}: true,
		{entities.StatusShipped, entities.StatusDelivered}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				err := lifecycle.Validate(from, to)
				if allowed[[2]entities.Status{from, to}] {
					assert.NoError(t, err)
					return
				}

				require.ErrorIs(t, err, entities.ErrInvalidTransition)
				var te *lifecycle.TransitionError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, from, te.From)
				assert.Equal(t, to, te.To)
			})
		}
	}
}

func TestValidate_UnknownStatus(t *testing.T) {
	err := lifecycle.Validate(entities.StatusPending, entities.Status("archived"))
	assert.ErrorIs(t, err, entities.ErrValidation)

	err = lifecycle.Validate(entities.Status("PENDING"), entities.StatusConfirmed)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestValidate_Examples(t *testing.T) {
	// подтвердить можно только заказ в статусе pending
	assert.ErrorIs(t, lifecycle.Validate(entities.StatusShipped, entities.StatusConfirmed), entities.ErrInvalidTransition)
	// отменить подтверждённый заказ нельзя
	assert.ErrorIs(t, lifecycle.Validate(entities.StatusConfirmed, entities.StatusCancelled), entities.ErrInvalidTransition)
	// повторный вход в то же состояние
	assert.ErrorIs(t, lifecycle.Validate(entities.StatusPending, entities.StatusPending), entities.ErrInvalidTransition)
	// пропуск состояния
	assert.ErrorIs(t, lifecycle.Validate(entities.StatusPending, entities.StatusShipped), entities.ErrInvalidTransition)
}

func TestReachableStatuses(t *testing.T) {
	seen := map[entities.Status]bool{entities.StatusPending: true}
	queue := []entities.Status{entities.StatusPending}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range lifecycle.Actions(cur) {
			next := a.Target()
			require.NoError(t, lifecycle.Validate(cur, next))
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, s := range allStatuses {
		assert.True(t, seen[s], "status %s must be reachable from pending", s)
	}
}

func TestActions(t *testing.T) {
	testCases := []struct {
		status entities.Status
		want   []lifecycle.Action
	}{
		{entities.StatusPending, []lifecycle.Action{lifecycle.ActionConfirm, lifecycle.ActionCancel}},
		{entities.StatusConfirmed, []lifecycle.Action{lifecycle.ActionShip}},
		{entities.StatusShipped, []lifecycle.Action{lifecycle.ActionDeliver}},
		{entities.StatusDelivered, nil},
		{entities.StatusCancelled, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, lifecycle.Actions(tc.status))
		})
	}
}

func TestParseAction(t *testing.T) {
	a, err := lifecycle.ParseAction("ship")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.ActionShip, a)
	assert.Equal(t, entities.StatusShipped, a.Target())

	_, err = lifecycle.ParseAction("refund")
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestPolicy(t *testing.T) {
	p, err := lifecycle.ParsePolicy("delete")
	require.NoError(t, err)
	assert.True(t, p.Removes(entities.StatusDelivered))
	assert.False(t, p.Removes(entities.StatusCancelled))
	assert.False(t, p.Removes(entities.StatusShipped))

	p, err = lifecycle.ParsePolicy("retain")
	require.NoError(t, err)
	assert.False(t, p.Removes(entities.StatusDelivered))

	_, err = lifecycle.ParsePolicy("archive")
	assert.ErrorIs(t, err, entities.ErrValidation)
}
