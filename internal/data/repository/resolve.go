package repository

import (
	"context"
	"fmt"

	"media-watchlist/pkg/database"

	"github.com/jackc/pgx/v5"
)

// acquireResolveLock takes a transaction-scoped advisory lock on a natural
// key. A FOR UPDATE lookup that matches no rows acquires no lock in
// PostgreSQL, so the row locks alone cannot stop two transactions from both
// missing and both inserting the same key; the advisory lock closes that
// window. It is released automatically at commit or rollback.
func acquireResolveLock(ctx context.Context, q database.Querier, key string) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return fmt.Errorf("acquire resolve lock %s: %w", key, err)
	}
	return nil
}

// resolveOrCreate is the one place the lock-then-check-then-insert sequence
// lives. lockKey names the table and natural key being resolved; the advisory
// lock on it serializes concurrent resolution of the same key for the life of
// the transaction, so the second transaction blocks here, then observes the
// committed row and reuses it instead of inserting a duplicate. lockQuery
// must select the identity column of the row matching the natural key with
// FOR UPDATE (holding the existing row against concurrent writers);
// insertQuery must end with RETURNING the identity.
func resolveOrCreate(ctx context.Context, q database.Querier, lockKey, lockQuery, insertQuery string, lockArgs, insertArgs []any) (int64, error) {
	if err := acquireResolveLock(ctx, q, lockKey); err != nil {
		return 0, err
	}

	var id int64
	err := q.QueryRow(ctx, lockQuery, lockArgs...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != pgx.ErrNoRows {
		return 0, fmt.Errorf("locking lookup: %w", err)
	}

	if err := q.QueryRow(ctx, insertQuery, insertArgs...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}

	return id, nil
}
