package wire

import (
	"media-watchlist/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler, log *zap.Logger) {
	// GET /api/search?q=&category=&sort= - Search media, users or genres
	r.Get("/api/search", searchHandler.Search)
}
