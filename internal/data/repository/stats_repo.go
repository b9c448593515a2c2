package repository

import (
	"context"
	"fmt"

	"media-watchlist/internal/data/entity"
	"media-watchlist/pkg/database"

	"go.uber.org/zap"
)

// StatsRepository runs the fixed reporting queries. All statements are
// read-only and participate in no transaction.
type StatsRepository interface {
	TopRatedMedia(ctx context.Context) ([]*entity.TopRatedMedia, error)
	TopUsersCompleted(ctx context.Context) ([]*entity.TopUserCompleted, error)
	TopMediaCompletions(ctx context.Context) ([]*entity.TopMediaCompletions, error)
	AvgRatingPerGenre(ctx context.Context) ([]*entity.GenreAvgRating, error)
	UsersRatedHigh(ctx context.Context) ([]*entity.User, error)
	LowRatedRecent(ctx context.Context) ([]*entity.LowRatedRecent, error)
}

type statsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStatsRepository(db database.PgxIface, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

func (r *statsRepository) TopRatedMedia(ctx context.Context) ([]*entity.TopRatedMedia, error) {
	query := `
		SELECT m."MediaType", m."MediaName", ROUND(AVG(rv."Rating")::numeric, 2)::float8 AS avg_rating
		FROM "Review" rv
		JOIN "Media" m ON rv."MediaId" = m."MediaId"
		GROUP BY m."MediaId", m."MediaType", m."MediaName"
		ORDER BY avg_rating DESC
		LIMIT 5
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query top rated media", zap.Error(err))
		return nil, fmt.Errorf("top rated media: %w", err)
	}
	defer rows.Close()

	var results []*entity.TopRatedMedia
	for rows.Next() {
		var res entity.TopRatedMedia
		if err := rows.Scan(&res.MediaType, &res.MediaName, &res.AvgRating); err != nil {
			return nil, fmt.Errorf("scan top rated media row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}

func (r *statsRepository) TopUsersCompleted(ctx context.Context) ([]*entity.TopUserCompleted, error) {
	query := `
		SELECT u."FirstName", u."LastName", COUNT(*) AS media_done
		FROM "User" u
		JOIN "Review" rv ON u."UserId" = rv."UserId"
		WHERE rv."Status" = 'Completed'
		GROUP BY u."UserId", u."FirstName", u."LastName"
		HAVING COUNT(*) > 5
		ORDER BY media_done DESC
		LIMIT 5
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query top users completed", zap.Error(err))
		return nil, fmt.Errorf("top users completed: %w", err)
	}
	defer rows.Close()

	var results []*entity.TopUserCompleted
	for rows.Next() {
		var res entity.TopUserCompleted
		if err := rows.Scan(&res.FirstName, &res.LastName, &res.MediaDone); err != nil {
			return nil, fmt.Errorf("scan top users completed row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}

func (r *statsRepository) TopMediaCompletions(ctx context.Context) ([]*entity.TopMediaCompletions, error) {
	query := `
		SELECT m."MediaName", COUNT(*) AS user_completions
		FROM "Media" m
		JOIN "Review" rv ON m."MediaId" = rv."MediaId"
		WHERE rv."Status" = 'Completed'
		GROUP BY m."MediaId", m."MediaName"
		HAVING COUNT(*) > 5
		ORDER BY user_completions DESC
		LIMIT 5
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query top media completions", zap.Error(err))
		return nil, fmt.Errorf("top media completions: %w", err)
	}
	defer rows.Close()

	var results []*entity.TopMediaCompletions
	for rows.Next() {
		var res entity.TopMediaCompletions
		if err := rows.Scan(&res.MediaName, &res.UserCompletions); err != nil {
			return nil, fmt.Errorf("scan top media completions row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}

func (r *statsRepository) AvgRatingPerGenre(ctx context.Context) ([]*entity.GenreAvgRating, error) {
	query := `
		SELECT g."GenreName", AVG(rv."Rating")::float8 AS avg_rating
		FROM "Review" rv
		JOIN "Media" m ON rv."MediaId" = m."MediaId"
		JOIN "Genre" g ON m."GenreId" = g."GenreId"
		GROUP BY g."GenreName"
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query avg rating per genre", zap.Error(err))
		return nil, fmt.Errorf("avg rating per genre: %w", err)
	}
	defer rows.Close()

	var results []*entity.GenreAvgRating
	for rows.Next() {
		var res entity.GenreAvgRating
		if err := rows.Scan(&res.GenreName, &res.AvgRating); err != nil {
			return nil, fmt.Errorf("scan avg rating per genre row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}

func (r *statsRepository) UsersRatedHigh(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT "UserId", "FirstName", "LastName", "ProfileName"
		FROM "User"
		WHERE "UserId" IN (
			SELECT "UserId" FROM "Review" WHERE "Rating" >= 4
		)
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query users rated high", zap.Error(err))
		return nil, fmt.Errorf("users rated high: %w", err)
	}
	defer rows.Close()

	var results []*entity.User
	for rows.Next() {
		var res entity.User
		if err := rows.Scan(&res.UserID, &res.FirstName, &res.LastName, &res.ProfileName); err != nil {
			return nil, fmt.Errorf("scan users rated high row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}

func (r *statsRepository) LowRatedRecent(ctx context.Context) ([]*entity.LowRatedRecent, error) {
	query := `
		SELECT m."MediaName", m."MediaType", m."ReleaseYear", rv."Rating"
		FROM "Review" rv
		JOIN "Media" m ON rv."MediaId" = m."MediaId"
		WHERE rv."Rating" <= 3
		ORDER BY m."ReleaseYear" DESC
		LIMIT 10
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query low rated recent", zap.Error(err))
		return nil, fmt.Errorf("low rated recent: %w", err)
	}
	defer rows.Close()

	var results []*entity.LowRatedRecent
	for rows.Next() {
		var res entity.LowRatedRecent
		if err := rows.Scan(&res.MediaName, &res.MediaType, &res.ReleaseYear, &res.Rating); err != nil {
			return nil, fmt.Errorf("scan low rated recent row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}
