package adaptor

import (
	"net/http"

	"media-watchlist/pkg/database"
	"media-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHealthHandler(db database.PgxIface, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "ok", nil)
}

// PingDB handles GET /api/db/ping
func (h *HealthHandler) PingDB(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		utils.ResponseInternalError(w, "Database unreachable")
		return
	}

	utils.ResponseSuccess(w, "database connection successful", nil)
}
