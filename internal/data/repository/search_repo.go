package repository

import (
	"context"
	"errors"
	"fmt"

	"media-watchlist/internal/data/entity"
	"media-watchlist/pkg/database"

	"go.uber.org/zap"
)

// ErrUnknownCategory is returned when the category is outside the closed
// enumeration of search templates.
var ErrUnknownCategory = errors.New("unknown search category")

// searchTemplates holds one fixed statement per category. The only dynamic
// pieces are the single bound filter parameter and the ORDER BY clause,
// which is selected from searchOrderings below — raw input never reaches
// the SQL text.
var searchTemplates = map[entity.SearchCategory]string{
	entity.SearchCategoryMedia: `
		SELECT m."MediaId", m."MediaName", m."MediaType", m."ReleaseYear",
		       g."GenreName", p."PlatformName",
		       AVG(r."Rating")::float8 AS avg_rating,
		       COUNT(r."ReviewId") AS review_count
		FROM "Media" m
		LEFT JOIN "Genre" g ON g."GenreId" = m."GenreId"
		LEFT JOIN "Platform" p ON p."PlatformId" = m."PlatformId"
		LEFT JOIN "Review" r ON r."MediaId" = m."MediaId"
		WHERE m."MediaName" ILIKE $1
		GROUP BY m."MediaId", m."MediaName", m."MediaType", m."ReleaseYear",
		         g."GenreName", p."PlatformName"`,

	entity.SearchCategoryUser: `
		SELECT u."UserId", u."FirstName", u."LastName", u."ProfileName",
		       COUNT(r."ReviewId") AS review_count
		FROM "User" u
		LEFT JOIN "Review" r ON r."UserId" = u."UserId"
		WHERE u."ProfileName" ILIKE $1 OR u."FirstName" ILIKE $1 OR u."LastName" ILIKE $1
		GROUP BY u."UserId", u."FirstName", u."LastName", u."ProfileName"`,

	entity.SearchCategoryGenre: `
		SELECT g."GenreId", g."GenreName",
		       COUNT(DISTINCT m."MediaId") AS media_count,
		       AVG(r."Rating")::float8 AS avg_rating
		FROM "Genre" g
		LEFT JOIN "Media" m ON m."GenreId" = g."GenreId"
		LEFT JOIN "Review" r ON r."MediaId" = m."MediaId"
		WHERE g."GenreName" ILIKE $1
		GROUP BY g."GenreId", g."GenreName"`,
}

// searchOrderings is the per-category whitelist of ORDER BY clauses. A sort
// key absent from the category's map means no explicit ordering; the key is
// never interpolated into the statement.
var searchOrderings = map[entity.SearchCategory]map[entity.SearchSort]string{
	entity.SearchCategoryMedia: {
		entity.SortNameAsc:    `m."MediaName" ASC`,
		entity.SortNameDesc:   `m."MediaName" DESC`,
		entity.SortRatingAsc:  `avg_rating ASC NULLS FIRST`,
		entity.SortRatingDesc: `avg_rating DESC NULLS LAST`,
		entity.SortYearAsc:    `m."ReleaseYear" ASC`,
		entity.SortYearDesc:   `m."ReleaseYear" DESC`,
	},
	entity.SearchCategoryUser: {
		entity.SortNameAsc:   `u."LastName" ASC`,
		entity.SortNameDesc:  `u."LastName" DESC`,
		entity.SortCountAsc:  `review_count ASC`,
		entity.SortCountDesc: `review_count DESC`,
	},
	entity.SearchCategoryGenre: {
		entity.SortNameAsc:    `g."GenreName" ASC`,
		entity.SortNameDesc:   `g."GenreName" DESC`,
		entity.SortRatingAsc:  `avg_rating ASC NULLS FIRST`,
		entity.SortRatingDesc: `avg_rating DESC NULLS LAST`,
		entity.SortCountAsc:   `media_count ASC`,
		entity.SortCountDesc:  `media_count DESC`,
	},
}

// BuildSearchQuery assembles the statement and bound arguments for one
// search. The free text is the only bound parameter; the category and sort
// select from closed tables.
func BuildSearchQuery(category entity.SearchCategory, sort entity.SearchSort, text string) (string, []any, error) {
	base, ok := searchTemplates[category]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}

	query := base
	if clause, ok := searchOrderings[category][sort]; ok {
		query += "\n\t\tORDER BY " + clause
	}

	return query, []any{"%" + text + "%"}, nil
}

type SearchRepository interface {
	SearchMedia(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.MediaSearchResult, error)
	SearchUsers(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.UserSearchResult, error)
	SearchGenres(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.GenreSearchResult, error)
}

type searchRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSearchRepository(db database.PgxIface, log *zap.Logger) SearchRepository {
	return &searchRepository{
		db:  db,
		log: log.With(zap.String("repository", "search")),
	}
}

func (r *searchRepository) SearchMedia(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.MediaSearchResult, error) {
	query, args, err := BuildSearchQuery(entity.SearchCategoryMedia, sort, text)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search media",
			zap.Error(err),
			zap.String("text", text),
			zap.String("sort", string(sort)),
		)
		return nil, fmt.Errorf("search media: %w", err)
	}
	defer rows.Close()

	var results []*entity.MediaSearchResult
	for rows.Next() {
		var res entity.MediaSearchResult
		err := rows.Scan(
			&res.MediaID,
			&res.MediaName,
			&res.MediaType,
			&res.ReleaseYear,
			&res.GenreName,
			&res.PlatformName,
			&res.AvgRating,
			&res.ReviewCount,
		)
		if err != nil {
			r.log.Error("Failed to scan media search row", zap.Error(err))
			return nil, fmt.Errorf("scan media search row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}

func (r *searchRepository) SearchUsers(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.UserSearchResult, error) {
	query, args, err := BuildSearchQuery(entity.SearchCategoryUser, sort, text)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search users",
			zap.Error(err),
			zap.String("text", text),
			zap.String("sort", string(sort)),
		)
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	var results []*entity.UserSearchResult
	for rows.Next() {
		var res entity.UserSearchResult
		err := rows.Scan(
			&res.UserID,
			&res.FirstName,
			&res.LastName,
			&res.ProfileName,
			&res.ReviewCount,
		)
		if err != nil {
			r.log.Error("Failed to scan user search row", zap.Error(err))
			return nil, fmt.Errorf("scan user search row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}

func (r *searchRepository) SearchGenres(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.GenreSearchResult, error) {
	query, args, err := BuildSearchQuery(entity.SearchCategoryGenre, sort, text)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search genres",
			zap.Error(err),
			zap.String("text", text),
			zap.String("sort", string(sort)),
		)
		return nil, fmt.Errorf("search genres: %w", err)
	}
	defer rows.Close()

	var results []*entity.GenreSearchResult
	for rows.Next() {
		var res entity.GenreSearchResult
		err := rows.Scan(
			&res.GenreID,
			&res.GenreName,
			&res.MediaCount,
			&res.AvgRating,
		)
		if err != nil {
			r.log.Error("Failed to scan genre search row", zap.Error(err))
			return nil, fmt.Errorf("scan genre search row: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}
