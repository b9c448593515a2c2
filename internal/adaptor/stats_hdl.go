package adaptor

import (
	"net/http"

	"media-watchlist/internal/usecase"
	"media-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

func (h *StatsHandler) respond(w http.ResponseWriter, operation string, result any, err error) {
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}
	utils.ResponseSuccess(w, "success", result)
}

// TopRatedMedia handles GET /api/top-rated-media
func (h *StatsHandler) TopRatedMedia(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.TopRatedMedia(r.Context())
	h.respond(w, "get top rated media", result, err)
}

// TopUsersCompleted handles GET /api/top-users-completed
func (h *StatsHandler) TopUsersCompleted(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.TopUsersCompleted(r.Context())
	h.respond(w, "get top users completed", result, err)
}

// TopMediaCompletions handles GET /api/top-media-completions
func (h *StatsHandler) TopMediaCompletions(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.TopMediaCompletions(r.Context())
	h.respond(w, "get top media completions", result, err)
}

// AvgRatingPerGenre handles GET /api/avg-rating-genre
func (h *StatsHandler) AvgRatingPerGenre(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AvgRatingPerGenre(r.Context())
	h.respond(w, "get average rating per genre", result, err)
}

// UsersRatedHigh handles GET /api/users-rated-high
func (h *StatsHandler) UsersRatedHigh(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.UsersRatedHigh(r.Context())
	h.respond(w, "get users rated high", result, err)
}

// LowRatedRecent handles GET /api/low-rated-recent
func (h *StatsHandler) LowRatedRecent(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.LowRatedRecent(r.Context())
	h.respond(w, "get low rated recent", result, err)
}
