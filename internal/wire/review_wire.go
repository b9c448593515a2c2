package wire

import (
	"media-watchlist/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, log *zap.Logger) {
	r.Route("/api/reviews", func(r chi.Router) {
		r.Post("/", reviewHandler.CreateReview)        // POST /api/reviews
		r.Put("/{id}", reviewHandler.UpdateReview)     // PUT /api/reviews/{id}
		r.Delete("/{id}", reviewHandler.DeleteReview)  // DELETE /api/reviews/{id}
	})
}
