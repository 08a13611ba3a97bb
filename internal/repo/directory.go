package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// directoryRepo читает профили покупателей из таблиц сервиса аккаунтов.
type directoryRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewDirectoryRepo(db *sqlx.DB) *directoryRepo {
	return &directoryRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// LookupProfiles получает все профили одним запросом. Неизвестных ID
// в результате нет.
func (r *directoryRepo) LookupProfiles(ctx context.Context, userIDs []string) (map[string]entities.Profile, error) {
	if len(userIDs) == 0 {
		return map[string]entities.Profile{}, nil
	}

	query, args := r.qb.Select("id", "full_name", "phone", "email", "address").
		From("profiles").
		Where(sq.Eq{"id": userIDs}).
		MustSql()

	var rows []Profile
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select profiles: %w", err)
	}

	result := make(map[string]entities.Profile, len(rows))
	for _, row := range rows {
		result[row.ID] = ProfileToEntity(row)
	}
	return result, nil
}
