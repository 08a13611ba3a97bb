package service

import (
	"context"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/pkg/cache"
)

// Кэшируются только найденные записи: профиль, созданный после промаха,
// появится при следующей отрисовке.

type cachedDirectory struct {
	next  Directory
	cache *cache.LRUCache[entities.Profile]
}

func NewCachedDirectory(next Directory, c *cache.LRUCache[entities.Profile]) Directory {
	return &cachedDirectory{next: next, cache: c}
}

func (d *cachedDirectory) LookupProfiles(ctx context.Context, userIDs []string) (map[string]entities.Profile, error) {
	return cachedLookup(ctx, d.cache, userIDs, d.next.LookupProfiles)
}

type cachedCatalog struct {
	next  Catalog
	cache *cache.LRUCache[entities.Listing]
}

func NewCachedCatalog(next Catalog, c *cache.LRUCache[entities.Listing]) Catalog {
	return &cachedCatalog{next: next, cache: c}
}

func (c *cachedCatalog) LookupListings(ctx context.Context, listingIDs []string) (map[string]entities.Listing, error) {
	return cachedLookup(ctx, c.cache, listingIDs, c.next.LookupListings)
}

func cachedLookup[V any](
	ctx context.Context,
	c *cache.LRUCache[V],
	ids []string,
	fetch func(context.Context, []string) (map[string]V, error),
) (map[string]V, error) {
	hits, misses := c.GetMany(ids)
	if len(misses) == 0 {
		return hits, nil
	}

	fetched, err := fetch(ctx, misses)
	if err != nil {
		return hits, err
	}
	for k, v := range fetched {
		c.Set(k, v)
		hits[k] = v
	}
	return hits, nil
}
