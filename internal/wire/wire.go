// internal/wire/wire.go
package wire

import (
	"media-watchlist/internal/adaptor"
	"media-watchlist/internal/data/repository"
	"media-watchlist/internal/usecase"
	"media-watchlist/pkg/middleware"
	"media-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, repo.DB, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireWatchlist(r, handler.Watchlist, logger)
	wireSearch(r, handler.Search, logger)
	wireUser(r, handler.User, logger)
	wireReview(r, handler.Review, logger)
	wireStats(r, handler.Stats, logger)

	// Health check endpoints
	r.Get("/health", handler.Health.Health)
	r.Get("/api/db/ping", handler.Health.PingDB)

	return r
}
