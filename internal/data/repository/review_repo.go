package repository

import (
	"context"
	"fmt"

	"media-watchlist/internal/data/entity"
	"media-watchlist/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Upsert runs inside the caller's transaction: it takes a row lock on the
	// review for (UserId, MediaId), updating Rating/ReviewText/Status in
	// place when the row exists and inserting it otherwise. It reports
	// whether a new row was created.
	Upsert(ctx context.Context, q database.Querier, review *entity.Review) (bool, error)

	Create(ctx context.Context, review *entity.Review) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Upsert(ctx context.Context, q database.Querier, review *entity.Review) (bool, error) {
	// The FOR UPDATE lookup locks nothing when the pair has no row yet, so
	// first-creation of the same (UserId, MediaId) serializes on this key.
	if err := acquireResolveLock(ctx, q, fmt.Sprintf("Review:%d:%d", review.UserID, review.MediaID)); err != nil {
		return false, err
	}

	lockQuery := `
		SELECT "ReviewId" FROM "Review"
		WHERE "UserId" = $1 AND "MediaId" = $2
		FOR UPDATE
	`

	var reviewID int64
	err := q.QueryRow(ctx, lockQuery, review.UserID, review.MediaID).Scan(&reviewID)

	switch {
	case err == pgx.ErrNoRows:
		insertQuery := `
			INSERT INTO "Review" ("UserId", "MediaId", "Rating", "ReviewText", "Status")
			VALUES ($1, $2, $3, $4, $5)
			RETURNING "ReviewId"
		`
		err := q.QueryRow(ctx, insertQuery,
			review.UserID,
			review.MediaID,
			review.Rating,
			review.ReviewText,
			review.Status,
		).Scan(&review.ReviewID)
		if err != nil {
			r.log.Error("Failed to insert review",
				zap.Error(err),
				zap.Int64("user_id", review.UserID),
				zap.Int64("media_id", review.MediaID),
			)
			return false, fmt.Errorf("insert review: %w", err)
		}
		return true, nil

	case err != nil:
		r.log.Error("Failed to lock review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("media_id", review.MediaID),
		)
		return false, fmt.Errorf("locking lookup review: %w", err)

	default:
		updateQuery := `
			UPDATE "Review"
			SET "Rating" = $2, "ReviewText" = $3, "Status" = $4
			WHERE "ReviewId" = $1
		`
		_, err := q.Exec(ctx, updateQuery,
			reviewID,
			review.Rating,
			review.ReviewText,
			review.Status,
		)
		if err != nil {
			r.log.Error("Failed to update review",
				zap.Error(err),
				zap.Int64("review_id", reviewID),
			)
			return false, fmt.Errorf("update review %d: %w", reviewID, err)
		}
		review.ReviewID = reviewID
		return false, nil
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) (int64, error) {
	query := `
		INSERT INTO "Review" ("UserId", "MediaId", "Rating", "ReviewText", "Status")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING "ReviewId"
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.MediaID,
		review.Rating,
		review.ReviewText,
		review.Status,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("media_id", review.MediaID),
		)
		return 0, fmt.Errorf("create review: %w", err)
	}

	return id, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT "ReviewId", "UserId", "MediaId", "Rating", "ReviewText", "Status"
		FROM "Review"
		WHERE "ReviewId" = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ReviewID,
		&review.UserID,
		&review.MediaID,
		&review.Rating,
		&review.ReviewText,
		&review.Status,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE "Review"
		SET "Rating" = $2, "ReviewText" = $3, "Status" = $4
		WHERE "ReviewId" = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ReviewID,
		review.Rating,
		review.ReviewText,
		review.Status,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ReviewID),
		)
		return fmt.Errorf("update review %d: %w", review.ReviewID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", review.ReviewID, ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM "Review" WHERE "ReviewId" = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", id, ErrNotFound)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}
