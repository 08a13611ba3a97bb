package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newOrder(id, sellerID string, createdAt time.Time) entities.Order {
	return entities.Order{
		ID:            id,
		BuyerID:       "buyer-1",
		SellerID:      sellerID,
		ListingID:     "listing-1",
		Quantity:      decimal.NewFromInt(10),
		Unit:          "kg",
		TotalAmount:   decimal.NewFromInt(500),
		Status:        entities.StatusPending,
		PaymentStatus: entities.PaymentPending,
		CreatedAt:     createdAt,
	}
}

func orderIDs(orders []entities.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestMemoryRepo_ListForSeller(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()

	require.NoError(t, r.SaveOrder(ctx, newOrder("t1", "s1", t0)))
	require.NoError(t, r.SaveOrder(ctx, newOrder("t3", "s1", t0.Add(2*time.Hour))))
	require.NoError(t, r.SaveOrder(ctx, newOrder("t2", "s1", t0.Add(time.Hour))))
	require.NoError(t, r.SaveOrder(ctx, newOrder("other", "s2", t0.Add(3*time.Hour))))

	got, err := r.ListForSeller(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t2", "t1"}, orderIDs(got))

	again, err := r.ListForSeller(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, got, again)

	empty, err := r.ListForSeller(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryRepo_ListForSeller_TiesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.SaveOrder(ctx, newOrder(id, "s1", t0)))
	}
	require.NoError(t, r.SaveOrder(ctx, newOrder("newest", "s1", t0.Add(time.Minute))))

	got, err := r.ListForSeller(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "a", "b", "c"}, orderIDs(got))
}

func TestMemoryRepo_SaveOrderIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()

	o := newOrder("o1", "s1", t0)
	require.NoError(t, r.SaveOrder(ctx, o))

	dup := o
	dup.Status = entities.StatusShipped
	require.NoError(t, r.SaveOrder(ctx, dup))

	got, err := r.GetOrder(ctx, "s1", "o1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, got.Status)
}

func TestMemoryRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		sellerID   string
		orderID    string
		from       entities.Status
		wantErr    error
		wantStatus entities.Status
	}{
		{
			name:       "OK",
			sellerID:   "s1",
			orderID:    "o1",
			from:       entities.StatusPending,
			wantStatus: entities.StatusConfirmed,
		},
		{
			name:       "stale expected status",
			sellerID:   "s1",
			orderID:    "o1",
			from:       entities.StatusShipped,
			wantErr:    entities.ErrConflict,
			wantStatus: entities.StatusPending,
		},
		{
			name:       "other seller",
			sellerID:   "s2",
			orderID:    "o1",
			from:       entities.StatusPending,
			wantErr:    entities.ErrOrderNotFound,
			wantStatus: entities.StatusPending,
		},
		{
			name:       "missing order",
			sellerID:   "s1",
			orderID:    "nope",
			from:       entities.StatusPending,
			wantErr:    entities.ErrOrderNotFound,
			wantStatus: entities.StatusPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := repo.NewMemoryRepo()
			require.NoError(t, r.SaveOrder(ctx, newOrder("o1", "s1", t0)))

			got, err := r.UpdateStatus(ctx, tc.sellerID, tc.orderID, tc.from, entities.StatusConfirmed)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantStatus, got.Status)
				assert.True(t, decimal.NewFromInt(500).Equal(got.TotalAmount))
			}

			stored, err := r.GetOrder(ctx, "s1", "o1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, stored.Status)
		})
	}
}

func TestMemoryRepo_DeleteOrder(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()
	require.NoError(t, r.SaveOrder(ctx, newOrder("o1", "s1", t0)))

	assert.ErrorIs(t, r.DeleteOrder(ctx, "s2", "o1", entities.StatusPending), entities.ErrOrderNotFound)
	assert.ErrorIs(t, r.DeleteOrder(ctx, "s1", "o1", entities.StatusShipped), entities.ErrConflict)

	require.NoError(t, r.DeleteOrder(ctx, "s1", "o1", entities.StatusPending))
	_, err := r.GetOrder(ctx, "s1", "o1")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.ErrorIs(t, r.DeleteOrder(ctx, "s1", "o1", entities.StatusPending), entities.ErrOrderNotFound)
}
