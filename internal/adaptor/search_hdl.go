package adaptor

import (
	"net/http"

	"media-watchlist/internal/dto/request"
	"media-watchlist/internal/usecase"
	"media-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type SearchHandler struct {
	service usecase.SearchService
	log     *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log.With(zap.String("handler", "search")),
	}
}

// Search handles GET /api/search?q=&category=&sort=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.SearchRequest{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		Sort:     query.Get("sort"),
	}

	results, err := h.service.Search(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search")
		return
	}

	utils.ResponseSuccess(w, "success", results)
}
