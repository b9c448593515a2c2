package wire

import (
	"media-watchlist/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, log *zap.Logger) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)       // POST /api/users
		r.Get("/", userHandler.GetUsers)          // GET /api/users
		r.Get("/{id}", userHandler.GetUserByID)   // GET /api/users/{id}
		r.Put("/{id}", userHandler.UpdateUser)    // PUT /api/users/{id}
		r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/users/{id}
	})
}
