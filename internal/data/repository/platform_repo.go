package repository

import (
	"context"
	"fmt"

	"media-watchlist/pkg/database"

	"go.uber.org/zap"
)

type PlatformRepository interface {
	// ResolveID runs inside the caller's transaction: it takes a row lock on
	// the platform matching PlatformName, inserting the row when absent.
	ResolveID(ctx context.Context, q database.Querier, platformName string) (int64, error)
}

type platformRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlatformRepository(db database.PgxIface, log *zap.Logger) PlatformRepository {
	return &platformRepository{
		db:  db,
		log: log.With(zap.String("repository", "platform")),
	}
}

func (r *platformRepository) ResolveID(ctx context.Context, q database.Querier, platformName string) (int64, error) {
	id, err := resolveOrCreate(ctx, q,
		fmt.Sprintf("Platform:%s", platformName),
		`SELECT "PlatformId" FROM "Platform" WHERE "PlatformName" = $1 FOR UPDATE`,
		`INSERT INTO "Platform" ("PlatformName") VALUES ($1) RETURNING "PlatformId"`,
		[]any{platformName},
		[]any{platformName},
	)
	if err != nil {
		r.log.Error("Failed to resolve platform",
			zap.Error(err),
			zap.String("platform_name", platformName),
		)
		return 0, fmt.Errorf("resolve platform %s: %w", platformName, err)
	}

	return id, nil
}
