package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"media-watchlist/internal/data/repository"
	"media-watchlist/internal/dto/request"
	"media-watchlist/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeTx answers the locking lookups and inserts the submission issues. In
// the default mode every lookup misses and every insert hands out the next
// sequential identity; with lockHit set, every lookup finds row lockHitID.
type fakeTx struct {
	nextID    int64
	lockHit   bool
	lockHitID int64
	failOn    string

	statements []string
	execArgs   [][]any
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (tx *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	tx.statements = append(tx.statements, sql)

	if tx.failOn != "" && strings.Contains(sql, tx.failOn) {
		return fakeRow{scan: func(dest ...any) error { return errors.New("forced failure") }}
	}

	if strings.Contains(sql, "FOR UPDATE") {
		if tx.lockHit {
			return fakeRow{scan: func(dest ...any) error {
				*(dest[0].(*int64)) = tx.lockHitID
				return nil
			}}
		}
		return fakeRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
	}

	tx.nextID++
	id := tx.nextID
	return fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*int64)) = id
		return nil
	}}
}

func (tx *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.statements = append(tx.statements, sql)
	tx.execArgs = append(tx.execArgs, args)
	return pgconn.CommandTag{}, nil
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
	begun    bool
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query outside transaction")
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return fakeRow{scan: func(dest ...any) error { return errors.New("unexpected QueryRow outside transaction") }}
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected Exec outside transaction")
}

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	db.begun = true
	return db.tx, nil
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close()                         {}

func newWatchlistFixture(tx *fakeTx) (WatchlistService, *fakeDB) {
	db := &fakeDB{tx: tx}
	repo := repository.NewRepository(db, zap.NewNop())
	return NewWatchlistService(repo, zap.NewNop()), db
}

func validSubmitRequest() *request.SubmitWatchlistEntryRequest {
	description := "A hacker learns his world is simulated."
	reviewText := "Held up on rewatch."
	return &request.SubmitWatchlistEntryRequest{
		FirstName:    "Ana",
		LastName:     "Luz",
		ProfileName:  "analuz",
		MediaName:    "The Matrix",
		MediaType:    "Movie",
		ReleaseYear:  1999,
		Description:  &description,
		GenreName:    "Sci-Fi",
		PlatformName: "Netflix",
		Rating:       5,
		ReviewText:   &reviewText,
		Status:       "Completed",
	}
}

func TestSubmit_ValidationRejectsBeforeTransaction(t *testing.T) {
	svc, db := newWatchlistFixture(&fakeTx{})

	req := validSubmitRequest()
	req.ProfileName = ""
	req.Rating = 0

	_, err := svc.Submit(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, db.begun, "an invalid request must never open a transaction")
}

func TestSubmit_InvalidStatusRejected(t *testing.T) {
	svc, db := newWatchlistFixture(&fakeTx{})

	req := validSubmitRequest()
	req.Status = "Dropped"

	_, err := svc.Submit(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, db.begun)
}

func TestSubmit_CreatesEverythingInOneTransaction(t *testing.T) {
	tx := &fakeTx{}
	svc, db := newWatchlistFixture(tx)

	resp, err := svc.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	// Identities are handed out in resolution order: user, genre, platform,
	// media, review, watchlist.
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, int64(4), resp.MediaID)
	assert.Equal(t, int64(5), resp.ReviewID)
	assert.True(t, resp.ReviewCreated)

	assert.True(t, db.begun)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)

	// Every table is touched by a lock-then-insert pair inside the one
	// transaction.
	for _, table := range []string{`"User"`, `"Genre"`, `"Platform"`, `"Media"`, `"Review"`, `"Watchlist"`} {
		locked, inserted := false, false
		for _, stmt := range tx.statements {
			if strings.Contains(stmt, table) && strings.Contains(stmt, "FOR UPDATE") {
				locked = true
			}
			if strings.Contains(stmt, table) && strings.Contains(stmt, "INSERT") {
				inserted = true
			}
		}
		assert.True(t, locked, "missing locking lookup on %s", table)
		assert.True(t, inserted, "missing insert on %s", table)
	}

	// Each natural key takes its advisory lock before the lookup; on this
	// path those are the only Exec calls, so the keys line up exactly.
	keys := make([]any, 0, len(tx.execArgs))
	for _, args := range tx.execArgs {
		require.Len(t, args, 1)
		keys = append(keys, args[0])
	}
	assert.Equal(t, []any{
		"User:analuz",
		"Genre:Sci-Fi",
		"Platform:Netflix",
		"Media:The Matrix:Movie:1999",
		"Review:1:4",
		"Watchlist:1:4",
	}, keys)
}

func TestSubmit_RatingBoundsRejected(t *testing.T) {
	for _, rating := range []int{0, 6} {
		svc, db := newWatchlistFixture(&fakeTx{})

		req := validSubmitRequest()
		req.Rating = rating

		_, err := svc.Submit(context.Background(), req)

		require.Error(t, err, "rating %d must be rejected", rating)
		assert.ErrorIs(t, err, ErrValidation)
		assert.False(t, db.begun, "rating %d must never open a transaction", rating)
	}
}

func TestSubmit_ReviewTextOptional(t *testing.T) {
	tx := &fakeTx{}
	svc, _ := newWatchlistFixture(tx)

	req := validSubmitRequest()
	req.ReviewText = nil

	resp, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.ReviewCreated)
	assert.True(t, tx.committed)
}

func TestSubmit_ReusesExistingRows(t *testing.T) {
	tx := &fakeTx{lockHit: true, lockHitID: 7}
	svc, _ := newWatchlistFixture(tx)

	resp, err := svc.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, int64(7), resp.MediaID)
	assert.Equal(t, int64(7), resp.ReviewID)
	assert.False(t, resp.ReviewCreated, "a re-submission updates, it does not create")

	for _, stmt := range tx.statements {
		assert.NotContains(t, stmt, "INSERT", "resolution of existing rows must not insert")
	}
	assert.True(t, tx.committed)
}

func TestSubmit_RollsBackOnMidTransactionFailure(t *testing.T) {
	tx := &fakeTx{failOn: `"Platform"`}
	svc, db := newWatchlistFixture(tx)

	_, err := svc.Submit(context.Background(), validSubmitRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmission)
	assert.True(t, db.begun)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack, "a partial submission must leave nothing behind")

	for _, stmt := range tx.statements {
		assert.NotContains(t, stmt, `"Review"`, "resolution must stop at the first failure")
	}
}

func TestSubmit_BeginFailure(t *testing.T) {
	db := &fakeDB{beginErr: errors.New("pool exhausted")}
	repo := repository.NewRepository(db, zap.NewNop())
	svc := NewWatchlistService(repo, zap.NewNop())

	_, err := svc.Submit(context.Background(), validSubmitRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmission)
}
