package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type catalogRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *catalogRepo) LookupListings(ctx context.Context, listingIDs []string) (map[string]entities.Listing, error) {
	if len(listingIDs) == 0 {
		return map[string]entities.Listing{}, nil
	}

	query, args := r.qb.Select("id", "crop_name").
		From("marketplace_listings").
		Where(sq.Eq{"id": listingIDs}).
		MustSql()

	var rows []Listing
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select listings: %w", err)
	}

	result := make(map[string]entities.Listing, len(rows))
	for _, row := range rows {
		result[row.ID] = ListingToEntity(row)
	}
	return result, nil
}
