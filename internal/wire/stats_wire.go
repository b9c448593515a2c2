package wire

import (
	"media-watchlist/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStats(r chi.Router, statsHandler *adaptor.StatsHandler, log *zap.Logger) {
	// Aggregate reporting endpoints (read-only)
	r.Get("/api/top-rated-media", statsHandler.TopRatedMedia)
	r.Get("/api/top-users-completed", statsHandler.TopUsersCompleted)
	r.Get("/api/top-media-completions", statsHandler.TopMediaCompletions)
	r.Get("/api/avg-rating-genre", statsHandler.AvgRatingPerGenre)
	r.Get("/api/users-rated-high", statsHandler.UsersRatedHigh)
	r.Get("/api/low-rated-recent", statsHandler.LowRatedRecent)
}
