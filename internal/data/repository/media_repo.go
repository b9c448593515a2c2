package repository

import (
	"context"
	"fmt"

	"media-watchlist/internal/data/entity"
	"media-watchlist/pkg/database"

	"go.uber.org/zap"
)

type MediaRepository interface {
	// ResolveID runs inside the caller's transaction: it takes a row lock on
	// the media matching the composite (MediaName, MediaType, ReleaseYear)
	// key, inserting the row when absent. media.GenreID and media.PlatformID
	// must already be resolved; they are only used on insert.
	ResolveID(ctx context.Context, q database.Querier, media *entity.Media) (int64, error)
}

type mediaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMediaRepository(db database.PgxIface, log *zap.Logger) MediaRepository {
	return &mediaRepository{
		db:  db,
		log: log.With(zap.String("repository", "media")),
	}
}

func (r *mediaRepository) ResolveID(ctx context.Context, q database.Querier, media *entity.Media) (int64, error) {
	id, err := resolveOrCreate(ctx, q,
		fmt.Sprintf("Media:%s:%s:%d", media.MediaName, media.MediaType, media.ReleaseYear),
		`SELECT "MediaId" FROM "Media"
		 WHERE "MediaName" = $1 AND "MediaType" = $2 AND "ReleaseYear" = $3
		 FOR UPDATE`,
		`INSERT INTO "Media" ("MediaName", "MediaType", "ReleaseYear", "GenreId", "PlatformId", "Description")
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING "MediaId"`,
		[]any{media.MediaName, media.MediaType, media.ReleaseYear},
		[]any{media.MediaName, media.MediaType, media.ReleaseYear, media.GenreID, media.PlatformID, media.Description},
	)
	if err != nil {
		r.log.Error("Failed to resolve media",
			zap.Error(err),
			zap.String("media_name", media.MediaName),
			zap.String("media_type", media.MediaType),
			zap.Int("release_year", media.ReleaseYear),
		)
		return 0, fmt.Errorf("resolve media %s (%s, %d): %w", media.MediaName, media.MediaType, media.ReleaseYear, err)
	}

	return id, nil
}
