package repository

import (
	"context"
	"fmt"

	"media-watchlist/internal/data/entity"
	"media-watchlist/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type WatchlistRepository interface {
	// Upsert runs inside the caller's transaction: it takes a row lock on the
	// watchlist entry for (UserId, MediaId), updating the status in place
	// when the row exists and inserting it otherwise.
	Upsert(ctx context.Context, q database.Querier, entry *entity.WatchlistEntry) error

	FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.WatchlistItem, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

type watchlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistRepository) Upsert(ctx context.Context, q database.Querier, entry *entity.WatchlistEntry) error {
	// The FOR UPDATE lookup locks nothing when the pair has no row yet, so
	// first-creation of the same (UserId, MediaId) serializes on this key.
	if err := acquireResolveLock(ctx, q, fmt.Sprintf("Watchlist:%d:%d", entry.UserID, entry.MediaID)); err != nil {
		return err
	}

	lockQuery := `
		SELECT "WatchlistId" FROM "Watchlist"
		WHERE "UserId" = $1 AND "MediaId" = $2
		FOR UPDATE
	`

	var watchlistID int64
	err := q.QueryRow(ctx, lockQuery, entry.UserID, entry.MediaID).Scan(&watchlistID)

	switch {
	case err == pgx.ErrNoRows:
		insertQuery := `
			INSERT INTO "Watchlist" ("UserId", "MediaId", "Status")
			VALUES ($1, $2, $3)
			RETURNING "WatchlistId"
		`
		err := q.QueryRow(ctx, insertQuery, entry.UserID, entry.MediaID, entry.Status).Scan(&entry.WatchlistID)
		if err != nil {
			r.log.Error("Failed to insert watchlist entry",
				zap.Error(err),
				zap.Int64("user_id", entry.UserID),
				zap.Int64("media_id", entry.MediaID),
			)
			return fmt.Errorf("insert watchlist entry: %w", err)
		}
		return nil

	case err != nil:
		r.log.Error("Failed to lock watchlist entry",
			zap.Error(err),
			zap.Int64("user_id", entry.UserID),
			zap.Int64("media_id", entry.MediaID),
		)
		return fmt.Errorf("locking lookup watchlist entry: %w", err)

	default:
		updateQuery := `UPDATE "Watchlist" SET "Status" = $2 WHERE "WatchlistId" = $1`
		if _, err := q.Exec(ctx, updateQuery, watchlistID, entry.Status); err != nil {
			r.log.Error("Failed to update watchlist entry",
				zap.Error(err),
				zap.Int64("watchlist_id", watchlistID),
			)
			return fmt.Errorf("update watchlist entry %d: %w", watchlistID, err)
		}
		entry.WatchlistID = watchlistID
		return nil
	}
}

func (r *watchlistRepository) FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.WatchlistItem, error) {
	query := `
		SELECT m."MediaId", m."MediaName", m."MediaType", m."ReleaseYear", w."Status", r."Rating"
		FROM "Watchlist" w
		JOIN "Media" m ON m."MediaId" = w."MediaId"
		LEFT JOIN "Review" r ON r."UserId" = w."UserId" AND r."MediaId" = w."MediaId"
		WHERE w."UserId" = $1
		ORDER BY m."MediaName"
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find watchlist by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find watchlist by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	var items []*entity.WatchlistItem
	for rows.Next() {
		var item entity.WatchlistItem
		err := rows.Scan(
			&item.MediaID,
			&item.MediaName,
			&item.MediaType,
			&item.ReleaseYear,
			&item.Status,
			&item.Rating,
		)
		if err != nil {
			r.log.Error("Failed to scan watchlist row", zap.Error(err))
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *watchlistRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM "Watchlist" WHERE "UserId" = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count watchlist by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("count watchlist by user ID %d: %w", userID, err)
	}

	return count, nil
}
