package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"media-watchlist/internal/dto/request"
	"media-watchlist/internal/usecase"
	"media-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "watchlist")),
	}
}

// SubmitEntry handles POST /api/watchlist
func (h *WatchlistHandler) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitWatchlistEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit watchlist entry")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// GetUserWatchlist handles GET /api/users/{id}/watchlist
func (h *WatchlistHandler) GetUserWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	items, err := h.service.GetUserWatchlist(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user watchlist")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}
