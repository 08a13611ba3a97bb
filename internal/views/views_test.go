package views_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/lifecycle"
	"github.com/SergeyBogomolovv/seller-orders/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(id string, status entities.Status) entities.OrderView {
	return entities.OrderView{
		Order: entities.Order{
			ID:        id,
			SellerID:  "seller-1",
			Status:    status,
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		BuyerName:   "Ravi",
		ListingName: "tomato",
	}
}

func statusSet(statuses ...entities.Status) []entities.OrderView {
	out := make([]entities.OrderView, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, newView(fmt.Sprintf("o%d", i+1), s))
	}
	return out
}

func ids(orders []entities.OrderView) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestCountPending(t *testing.T) {
	orders := []entities.Order{
		{ID: "1", Status: entities.StatusPending},
		{ID: "2", Status: entities.StatusPending},
		{ID: "3", Status: entities.StatusConfirmed},
		{ID: "4", Status: entities.StatusShipped},
		{ID: "5", Status: entities.StatusCancelled},
	}
	assert.Equal(t, 2, views.CountPending(orders))
	assert.Equal(t, 0, views.CountPending([]entities.Order{}))
	assert.Equal(t, 1, views.CountStatus(orders, entities.StatusShipped))
}

func TestSummary(t *testing.T) {
	testCases := []struct {
		name        string
		orders      []entities.OrderView
		wantIDs     []string
		wantPending int
	}{
		{
			name:        "empty",
			orders:      nil,
			wantIDs:     []string{},
			wantPending: 0,
		},
		{
			name:        "fewer than limit",
			orders:      statusSet(entities.StatusPending, entities.StatusShipped),
			wantIDs:     []string{"o1", "o2"},
			wantPending: 1,
		},
		{
			name: "capped at five, badge counts whole set",
			orders: statusSet(
				entities.StatusConfirmed, entities.StatusConfirmed, entities.StatusConfirmed,
				entities.StatusConfirmed, entities.StatusConfirmed, entities.StatusPending,
				entities.StatusPending,
			),
			wantIDs:     []string{"o1", "o2", "o3", "o4", "o5"},
			wantPending: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := views.Summary(tc.orders)
			assert.Equal(t, tc.wantIDs, ids(got.Orders))
			assert.Equal(t, tc.wantPending, got.PendingCount)
		})
	}
}

func TestManagement(t *testing.T) {
	orders := statusSet(
		entities.StatusPending,
		entities.StatusConfirmed,
		entities.StatusShipped,
		entities.StatusDelivered,
		entities.StatusCancelled,
		entities.StatusPending,
	)

	testCases := []struct {
		filter  views.Filter
		wantIDs []string
	}{
		{views.FilterPending, []string{"o1", "o6"}},
		{views.FilterConfirmed, []string{"o2"}},
		{views.FilterShipped, []string{"o3"}},
		{views.FilterAll, []string{"o1", "o2", "o3", "o6"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.filter), func(t *testing.T) {
			got := views.Management(orders, tc.filter)
			assert.Equal(t, tc.filter, got.Filter)
			assert.Equal(t, tc.wantIDs, ids(got.Orders))
			assert.Equal(t, views.Counts{Pending: 2, Confirmed: 1, Shipped: 1, Total: 6}, got.Counts)
		})
	}
}

func TestParseFilter(t *testing.T) {
	f, err := views.ParseFilter("all")
	require.NoError(t, err)
	assert.Equal(t, views.FilterAll, f)

	_, err = views.ParseFilter("cancelled")
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestDetail(t *testing.T) {
	v := newView("o1", entities.StatusPending)
	v.BuyerAddress = "Village road 4"

	d := views.Detail(v)
	assert.Equal(t, "Village road 4", d.ShippingAddress)
	assert.Equal(t, []lifecycle.Action{lifecycle.ActionConfirm, lifecycle.ActionCancel}, d.Actions)

	v.DeliveryAddress = "Market yard 2"
	v.Status = entities.StatusShipped
	d = views.Detail(v)
	assert.Equal(t, "Market yard 2", d.ShippingAddress)
	assert.Equal(t, []lifecycle.Action{lifecycle.ActionDeliver}, d.Actions)

	d = views.Detail(newView("o2", entities.StatusDelivered))
	assert.Equal(t, entities.NoAddress, d.ShippingAddress)
	assert.Empty(t, d.Actions)
}

func TestApply(t *testing.T) {
	orders := statusSet(entities.StatusPending, entities.StatusShipped)

	t.Run("status updated", func(t *testing.T) {
		updated := orders[0].Order
		updated.Status = entities.StatusConfirmed

		got := views.Apply(orders, "o1", &updated)
		require.Len(t, got, 2)
		assert.Equal(t, entities.StatusConfirmed, got[0].Status)
		assert.Equal(t, "Ravi", got[0].BuyerName)
		// исходный набор не меняется
		assert.Equal(t, entities.StatusPending, orders[0].Status)
	})

	t.Run("removed", func(t *testing.T) {
		got := views.Apply(orders, "o2", nil)
		assert.Equal(t, []string{"o1"}, ids(got))
		assert.Len(t, orders, 2)
	})

	t.Run("unknown id leaves set intact", func(t *testing.T) {
		got := views.Apply(orders, "missing", nil)
		assert.Equal(t, []string{"o1", "o2"}, ids(got))
	})
}

func TestFind(t *testing.T) {
	orders := statusSet(entities.StatusPending, entities.StatusShipped)

	o, ok := views.Find(orders, "o2")
	require.True(t, ok)
	assert.Equal(t, entities.StatusShipped, o.Status)

	_, ok = views.Find(orders, "o3")
	assert.False(t, ok)
}
