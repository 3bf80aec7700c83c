package lookup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// SQLChecker answers existence checks over a database/sql handle. It covers
// deployments where the lookup replica is reached through a driver that has
// no native pgx pool, and keeps the query portable across placeholders.
type SQLChecker struct {
	db      *sql.DB
	tables  map[Entity]string
	builder sq.StatementBuilderType
}

func NewSQLChecker(db *sql.DB) *SQLChecker {
	return &SQLChecker{
		db:      db,
		tables:  defaultTables(),
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (c *SQLChecker) Exists(ctx context.Context, entity Entity, id int64) (bool, error) {
	table, ok := c.tables[entity]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	query, args, err := c.builder.
		Select("1").
		From(table).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}

	var one int
	err = c.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return true, nil
}
