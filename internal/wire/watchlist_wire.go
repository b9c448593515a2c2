package wire

import (
	"media-watchlist/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWatchlist(r chi.Router, watchlistHandler *adaptor.WatchlistHandler, log *zap.Logger) {
	// POST /api/watchlist - Submit a full watchlist entry (user + media + review)
	r.Post("/api/watchlist", watchlistHandler.SubmitEntry)

	// GET /api/users/{id}/watchlist - List a user's watchlist
	r.Get("/api/users/{id}/watchlist", watchlistHandler.GetUserWatchlist)
}
