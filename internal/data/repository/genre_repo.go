package repository

import (
	"context"
	"fmt"

	"media-watchlist/pkg/database"

	"go.uber.org/zap"
)

type GenreRepository interface {
	// ResolveID runs inside the caller's transaction: it takes a row lock on
	// the genre matching GenreName, inserting the row when absent.
	ResolveID(ctx context.Context, q database.Querier, genreName string) (int64, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) ResolveID(ctx context.Context, q database.Querier, genreName string) (int64, error) {
	id, err := resolveOrCreate(ctx, q,
		fmt.Sprintf("Genre:%s", genreName),
		`SELECT "GenreId" FROM "Genre" WHERE "GenreName" = $1 FOR UPDATE`,
		`INSERT INTO "Genre" ("GenreName") VALUES ($1) RETURNING "GenreId"`,
		[]any{genreName},
		[]any{genreName},
	)
	if err != nil {
		r.log.Error("Failed to resolve genre",
			zap.Error(err),
			zap.String("genre_name", genreName),
		)
		return 0, fmt.Errorf("resolve genre %s: %w", genreName, err)
	}

	return id, nil
}
