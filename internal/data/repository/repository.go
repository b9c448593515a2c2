package repository

import (
	"media-watchlist/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	// DB is exposed so services can open transactions spanning several
	// repositories (the watchlist submission).
	DB database.PgxIface

	User      UserRepository
	Genre     GenreRepository
	Platform  PlatformRepository
	Media     MediaRepository
	Review    ReviewRepository
	Watchlist WatchlistRepository
	Search    SearchRepository
	Stats     StatsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:        db,
		User:      NewUserRepository(db, log),
		Genre:     NewGenreRepository(db, log),
		Platform:  NewPlatformRepository(db, log),
		Media:     NewMediaRepository(db, log),
		Review:    NewReviewRepository(db, log),
		Watchlist: NewWatchlistRepository(db, log),
		Search:    NewSearchRepository(db, log),
		Stats:     NewStatsRepository(db, log),
	}
}
