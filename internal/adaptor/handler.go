package adaptor

import (
	"errors"
	"net/http"

	"media-watchlist/internal/usecase"
	"media-watchlist/pkg/database"
	"media-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Watchlist *WatchlistHandler
	Search    *SearchHandler
	User      *UserHandler
	Review    *ReviewHandler
	Stats     *StatsHandler
	Health    *HealthHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, log *zap.Logger) *Handler {
	return &Handler{
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
		Search:    NewSearchHandler(service.Search, log),
		User:      NewUserHandler(service.User, log),
		Review:    NewReviewHandler(service.Review, log),
		Stats:     NewStatsHandler(service.Stats, log),
		Health:    NewHealthHandler(db, log),
	}
}

// handleServiceError maps the service error kinds to HTTP responses.
// Validation and not-found details go back to the caller; infrastructure
// failures are logged in full and surfaced as opaque messages.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCategory):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid search category", nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrSubmission):
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Submission failed")

	case errors.Is(err, usecase.ErrQueryExecution):
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Query failed")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
