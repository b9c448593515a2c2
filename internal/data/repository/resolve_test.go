package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error { return r.scan(dest...) }

// stubQuerier routes QueryRow through a per-statement callback and records
// every statement it sees, Exec included.
type stubQuerier struct {
	queryRow func(sql string, args []any) stubRow
	execErr  error

	seen     []string
	execArgs [][]any
}

func (q *stubQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (q *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.seen = append(q.seen, sql)
	return q.queryRow(sql, args)
}

func (q *stubQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.seen = append(q.seen, sql)
	q.execArgs = append(q.execArgs, args)
	return pgconn.CommandTag{}, q.execErr
}

const (
	lockStmt   = `SELECT "GenreId" FROM "Genre" WHERE "GenreName" = $1 FOR UPDATE`
	insertStmt = `INSERT INTO "Genre" ("GenreName") VALUES ($1) RETURNING "GenreId"`
)

func resolveGenre(q *stubQuerier, name string) (int64, error) {
	return resolveOrCreate(context.Background(), q,
		"Genre:"+name, lockStmt, insertStmt, []any{name}, []any{name})
}

func TestResolveOrCreate_AdvisoryLockPrecedesLookup(t *testing.T) {
	// The FOR UPDATE lookup locks nothing when the key has no row yet; the
	// advisory lock on the natural key is what keeps two first-creations of
	// the same key from both inserting.
	q := &stubQuerier{
		queryRow: func(sql string, args []any) stubRow {
			if strings.Contains(sql, "FOR UPDATE") {
				return stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
			}
			return stubRow{scan: func(dest ...any) error {
				*(dest[0].(*int64)) = 1
				return nil
			}}
		},
	}

	_, err := resolveGenre(q, "Horror")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(q.seen), 2)
	assert.Contains(t, q.seen[0], "pg_advisory_xact_lock", "the key lock must be taken before any lookup")
	assert.Contains(t, q.seen[1], "FOR UPDATE")

	require.Len(t, q.execArgs, 1)
	assert.Equal(t, []any{"Genre:Horror"}, q.execArgs[0])
}

func TestResolveOrCreate_LockAcquisitionFailureStopsResolution(t *testing.T) {
	boom := errors.New("connection reset")
	q := &stubQuerier{
		execErr: boom,
		queryRow: func(sql string, args []any) stubRow {
			return stubRow{scan: func(dest ...any) error { return nil }}
		},
	}

	_, err := resolveGenre(q, "Horror")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "acquire resolve lock")
	require.Len(t, q.seen, 1, "a lock failure must not fall through to the lookup")
}

func TestResolveOrCreate_ReturnsExistingID(t *testing.T) {
	q := &stubQuerier{
		queryRow: func(sql string, args []any) stubRow {
			return stubRow{scan: func(dest ...any) error {
				*(dest[0].(*int64)) = 7
				return nil
			}}
		},
	}

	id, err := resolveGenre(q, "Horror")
	require.NoError(t, err)

	assert.Equal(t, int64(7), id)
	require.Len(t, q.seen, 2, "a hit must not reach the insert")
	assert.Contains(t, q.seen[1], "FOR UPDATE")
}

func TestResolveOrCreate_InsertsWhenAbsent(t *testing.T) {
	q := &stubQuerier{
		queryRow: func(sql string, args []any) stubRow {
			if strings.Contains(sql, "FOR UPDATE") {
				return stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
			}
			return stubRow{scan: func(dest ...any) error {
				*(dest[0].(*int64)) = 42
				return nil
			}}
		},
	}

	id, err := resolveGenre(q, "Horror")
	require.NoError(t, err)

	assert.Equal(t, int64(42), id)
	require.Len(t, q.seen, 3)
	assert.Contains(t, q.seen[2], "INSERT")
}

func TestResolveOrCreate_LookupErrorStopsResolution(t *testing.T) {
	boom := errors.New("connection reset")
	q := &stubQuerier{
		queryRow: func(sql string, args []any) stubRow {
			return stubRow{scan: func(dest ...any) error { return boom }}
		},
	}

	_, err := resolveGenre(q, "Horror")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "locking lookup")
	require.Len(t, q.seen, 2, "a lookup failure must not fall through to the insert")
}

func TestResolveOrCreate_InsertErrorPropagates(t *testing.T) {
	boom := errors.New("not null violation")
	q := &stubQuerier{
		queryRow: func(sql string, args []any) stubRow {
			if strings.Contains(sql, "FOR UPDATE") {
				return stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
			}
			return stubRow{scan: func(dest ...any) error { return boom }}
		},
	}

	_, err := resolveGenre(q, "Horror")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "insert")
}
