package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGChecker answers existence checks directly against a PostgreSQL pool,
// typically pointed at a read replica.
type PGChecker struct {
	pool   *pgxpool.Pool
	tables map[Entity]string
}

func NewPGChecker(pool *pgxpool.Pool) *PGChecker {
	return &PGChecker{pool: pool, tables: defaultTables()}
}

func (c *PGChecker) Exists(ctx context.Context, entity Entity, id int64) (bool, error) {
	table, ok := c.tables[entity]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	// Table names come from the fixed entity map, never from caller input.
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)

	var exists bool
	if err := c.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return exists, nil
}
