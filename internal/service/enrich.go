package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"

	"golang.org/x/sync/errgroup"
)

type Directory interface {
	// LookupProfiles возвращает профили по ID пользователя. Неизвестных ID
	// в результате нет.
	LookupProfiles(ctx context.Context, userIDs []string) (map[string]entities.Profile, error)
}

type Catalog interface {
	LookupListings(ctx context.Context, listingIDs []string) (map[string]entities.Listing, error)
}

const (
	sourceDirectory = "directory"
	sourceCatalog   = "catalog"
)

// Enricher дополняет заказы данными покупателя и товара. При ошибке
// справочника затронутые поля заменяются заглушками.
type Enricher struct {
	logger    *slog.Logger
	directory Directory
	catalog   Catalog
	timeout   time.Duration
}

func NewEnricher(logger *slog.Logger, directory Directory, catalog Catalog, timeout time.Duration) *Enricher {
	return &Enricher{
		logger:    logger.With(slog.String("service", "enrichment")),
		directory: directory,
		catalog:   catalog,
		timeout:   timeout,
	}
}

// Enrich делает один запрос в справочник и один в каталог, параллельно.
// Порядок результата совпадает с входным.
func (e *Enricher) Enrich(ctx context.Context, orders []entities.Order) []entities.OrderView {
	if len(orders) == 0 {
		return []entities.OrderView{}
	}

	var (
		profiles map[string]entities.Profile
		listings map[string]entities.Listing
	)

	var g errgroup.Group
	g.Go(func() error {
		profiles = lookup(ctx, e, sourceDirectory, distinct(orders, buyerID), e.directory.LookupProfiles)
		return nil
	})
	g.Go(func() error {
		listings = lookup(ctx, e, sourceCatalog, distinct(orders, listingID), e.catalog.LookupListings)
		return nil
	})
	_ = g.Wait()

	result := make([]entities.OrderView, 0, len(orders))
	for _, o := range orders {
		v := entities.OrderView{
			Order:       o,
			BuyerName:   entities.UnknownBuyer,
			ListingName: entities.UnknownProduct,
		}

		if p, ok := profiles[o.BuyerID]; ok {
			if p.FullName != "" {
				v.BuyerName = p.FullName
			}
			v.BuyerPhone = p.Phone
			v.BuyerEmail = p.Email
			v.BuyerAddress = p.Address
		} else {
			enrichmentFallbacks.WithLabelValues(sourceDirectory).Inc()
		}

		if l, ok := listings[o.ListingID]; ok && l.Name != "" {
			v.ListingName = l.Name
		} else {
			enrichmentFallbacks.WithLabelValues(sourceCatalog).Inc()
		}

		result = append(result, v)
	}
	return result
}

// lookup ограничивает вызов таймаутом обогащения. Вызов, который игнорирует
// контекст, не дожидаемся. Частичный результат, вернувшийся вместе с
// ошибкой, всё равно используется.
func lookup[V any](
	ctx context.Context,
	e *Enricher,
	source string,
	ids []string,
	fn func(context.Context, []string) (map[string]V, error),
) map[string]V {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type result struct {
		values map[string]V
		err    error
	}

	start := time.Now()
	done := make(chan result, 1)
	go func() {
		values, err := fn(ctx, ids)
		done <- result{values: values, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		res = result{err: ctx.Err()}
	}
	lookupDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())

	if res.err != nil {
		lookupFailures.WithLabelValues(source).Inc()
		e.logger.WarnContext(ctx, "lookup failed, using placeholders",
			slog.String("source", source),
			slog.Int("ids", len(ids)),
			slog.Any("error", res.err),
		)
	}
	if res.values == nil {
		return map[string]V{}
	}
	return res.values
}

func buyerID(o entities.Order) string   { return o.BuyerID }
func listingID(o entities.Order) string { return o.ListingID }

func distinct(orders []entities.Order, key func(entities.Order) string) []string {
	seen := make(map[string]struct{}, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		k := key(o)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ids = append(ids, k)
	}
	return ids
}
