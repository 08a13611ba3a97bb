package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/seller-orders/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOrder(id, buyerID, listingID string) entities.Order {
	return entities.Order{
		ID:            id,
		BuyerID:       buyerID,
		SellerID:      "seller-1",
		ListingID:     listingID,
		Quantity:      decimal.NewFromInt(10),
		Unit:          "kg",
		TotalAmount:   decimal.NewFromInt(500),
		Status:        entities.StatusPending,
		PaymentStatus: entities.PaymentPending,
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

var (
	ravi = entities.Profile{
		UserID:   "b1",
		FullName: "Ravi Kumar",
		Phone:    "+919800000001",
		Email:    "ravi@example.com",
		Address:  "Village road 4",
	}
	tomato = entities.Listing{ID: "l1", Name: "tomato"}
)

func TestEnricher_Enrich(t *testing.T) {
	type MockBehavior func(dir *mocks.MockDirectory, cat *mocks.MockCatalog)

	testCases := []struct {
		name         string
		orders       []entities.Order
		mockBehavior MockBehavior
		want         []entities.OrderView
	}{
		{
			name:   "everything resolved",
			orders: []entities.Order{testOrder("o1", "b1", "l1")},
			mockBehavior: func(dir *mocks.MockDirectory, cat *mocks.MockCatalog) {
				dir.EXPECT().LookupProfiles(mock.Anything, []string{"b1"}).
					Return(map[string]entities.Profile{"b1": ravi}, nil).Once()
				cat.EXPECT().LookupListings(mock.Anything, []string{"l1"}).
					Return(map[string]entities.Listing{"l1": tomato}, nil).Once()
			},
			want: []entities.OrderView{{
				Order:        testOrder("o1", "b1", "l1"),
				BuyerName:    "Ravi Kumar",
				BuyerPhone:   "+919800000001",
				BuyerEmail:   "ravi@example.com",
				BuyerAddress: "Village road 4",
				ListingName:  "tomato",
			}},
		},
		{
			name:   "buyer missing from directory, listing still resolved",
			orders: []entities.Order{testOrder("o1", "ghost", "l1")},
			mockBehavior: func(dir *mocks.MockDirectory, cat *mocks.MockCatalog) {
				dir.EXPECT().LookupProfiles(mock.Anything, []string{"ghost"}).
					Return(map[string]entities.Profile{}, nil).Once()
				cat.EXPECT().LookupListings(mock.Anything, []string{"l1"}).
					Return(map[string]entities.Listing{"l1": tomato}, nil).Once()
			},
			want: []entities.OrderView{{
				Order:       testOrder("o1", "ghost", "l1"),
				BuyerName:   entities.UnknownBuyer,
				ListingName: "tomato",
			}},
		},
		{
			name:   "directory fails, catalog fails",
			orders: []entities.Order{testOrder("o1", "b1", "l1")},
			mockBehavior: func(dir *mocks.MockDirectory, cat *mocks.MockCatalog) {
				dir.EXPECT().LookupProfiles(mock.Anything, mock.Anything).
					Return(nil, errors.New("directory down")).Once()
				cat.EXPECT().LookupListings(mock.Anything, mock.Anything).
					Return(nil, errors.New("catalog down")).Once()
			},
			want: []entities.OrderView{{
				Order:       testOrder("o1", "b1", "l1"),
				BuyerName:   entities.UnknownBuyer,
				ListingName: entities.UnknownProduct,
			}},
		},
		{
			name:   "profile without name keeps contact fields",
			orders: []entities.Order{testOrder("o1", "b2", "l2")},
			mockBehavior: func(dir *mocks.MockDirectory, cat *mocks.MockCatalog) {
				dir.EXPECT().LookupProfiles(mock.Anything, []string{"b2"}).
					Return(map[string]entities.Profile{"b2": {UserID: "b2", Phone: "+919800000002"}}, nil).Once()
				cat.EXPECT().LookupListings(mock.Anything, []string{"l2"}).
					Return(map[string]entities.Listing{"l2": {ID: "l2"}}, nil).Once()
			},
			want: []entities.OrderView{{
				Order:       testOrder("o1", "b2", "l2"),
				BuyerName:   entities.UnknownBuyer,
				BuyerPhone:  "+919800000002",
				ListingName: entities.UnknownProduct,
			}},
		},
		{
			name: "one batched call per collaborator, input order kept",
			orders: []entities.Order{
				testOrder("o1", "b1", "l1"),
				testOrder("o2", "b1", "l2"),
				testOrder("o3", "b3", "l1"),
			},
			mockBehavior: func(dir *mocks.MockDirectory, cat *mocks.MockCatalog) {
				dir.EXPECT().LookupProfiles(mock.Anything, []string{"b1", "b3"}).
					Return(map[string]entities.Profile{"b1": ravi}, nil).Once()
				cat.EXPECT().LookupListings(mock.Anything, []string{"l1", "l2"}).
					Return(map[string]entities.Listing{"l1": tomato}, nil).Once()
			},
			want: []entities.OrderView{
				{
					Order:        testOrder("o1", "b1", "l1"),
					BuyerName:    "Ravi Kumar",
					BuyerPhone:   "+919800000001",
					BuyerEmail:   "ravi@example.com",
					BuyerAddress: "Village road 4",
					ListingName:  "tomato",
				},
				{
					Order:        testOrder("o2", "b1", "l2"),
					BuyerName:    "Ravi Kumar",
					BuyerPhone:   "+919800000001",
					BuyerEmail:   "ravi@example.com",
					BuyerAddress: "Village road 4",
					ListingName:  entities.UnknownProduct,
				},
				{
					Order:       testOrder("o3", "b3", "l1"),
					BuyerName:   entities.UnknownBuyer,
					ListingName: "tomato",
				},
			},
		},
		{
			name:         "empty batch makes no calls",
			orders:       nil,
			mockBehavior: func(_ *mocks.MockDirectory, _ *mocks.MockCatalog) {},
			want:         []entities.OrderView{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := mocks.NewMockDirectory(t)
			cat := mocks.NewMockCatalog(t)
			tc.mockBehavior(dir, cat)

			e := service.NewEnricher(discardLogger(), dir, cat, time.Second)

			got := e.Enrich(context.Background(), tc.orders)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnricher_SlowCollaboratorResolvesToPlaceholder(t *testing.T) {
	dir := mocks.NewMockDirectory(t)
	cat := mocks.NewMockCatalog(t)

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	dir.EXPECT().LookupProfiles(mock.Anything, mock.Anything).
		Return(map[string]entities.Profile{"b1": ravi}, nil).Once()
	// каталог игнорирует контекст и висит
	cat.EXPECT().LookupListings(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []string) (map[string]entities.Listing, error) {
			<-release
			return map[string]entities.Listing{"l1": tomato}, nil
		}).Once()

	e := service.NewEnricher(discardLogger(), dir, cat, 50*time.Millisecond)

	start := time.Now()
	got := e.Enrich(context.Background(), []entities.Order{testOrder("o1", "b1", "l1")})

	require.Len(t, got, 1)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "Ravi Kumar", got[0].BuyerName)
	assert.Equal(t, entities.UnknownProduct, got[0].ListingName)
}

func TestEnricher_DoesNotMutateOrders(t *testing.T) {
	dir := mocks.NewMockDirectory(t)
	cat := mocks.NewMockCatalog(t)
	dir.EXPECT().LookupProfiles(mock.Anything, mock.Anything).Return(map[string]entities.Profile{"b1": ravi}, nil)
	cat.EXPECT().LookupListings(mock.Anything, mock.Anything).Return(map[string]entities.Listing{"l1": tomato}, nil)

	orders := []entities.Order{testOrder("o1", "b1", "l1")}
	before := orders[0]

	service.NewEnricher(discardLogger(), dir, cat, time.Second).Enrich(context.Background(), orders)

	assert.Equal(t, before, orders[0])
}
