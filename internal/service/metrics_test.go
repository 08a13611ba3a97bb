package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	mocks "github.com/SergeyBogomolovv/seller-orders/internal/service/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnricher_FailureMetrics(t *testing.T) {
	dir := mocks.NewMockDirectory(t)
	cat := mocks.NewMockCatalog(t)

	dir.EXPECT().LookupProfiles(mock.Anything, []string{"b1", "b2"}).
		Return(nil, errors.New("directory down")).Once()
	cat.EXPECT().LookupListings(mock.Anything, []string{"l1"}).
		Return(map[string]entities.Listing{"l1": {ID: "l1", Name: "tomato"}}, nil).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewEnricher(logger, dir, cat, time.Second)

	failures := lookupFailures.WithLabelValues(sourceDirectory)
	catalogFailures := lookupFailures.WithLabelValues(sourceCatalog)
	fallbacks := enrichmentFallbacks.WithLabelValues(sourceDirectory)

	failuresBefore := testutil.ToFloat64(failures)
	catalogBefore := testutil.ToFloat64(catalogFailures)
	fallbacksBefore := testutil.ToFloat64(fallbacks)

	e.Enrich(context.Background(), []entities.Order{
		{ID: "o1", BuyerID: "b1", ListingID: "l1"},
		{ID: "o2", BuyerID: "b2", ListingID: "l1"},
		{ID: "o3", BuyerID: "b1", ListingID: "l1"},
	})

	// одна упавшая пачка, но три заказа с заглушкой
	assert.Equal(t, 1.0, testutil.ToFloat64(failures)-failuresBefore)
	assert.Equal(t, 0.0, testutil.ToFloat64(catalogFailures)-catalogBefore)
	assert.Equal(t, 3.0, testutil.ToFloat64(fallbacks)-fallbacksBefore)
}
