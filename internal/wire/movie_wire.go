package wire

import (
	"movie-reservation/internal/adaptor"
	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/middleware"
	"movie-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireMovie configures the movie catalog routes
func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(config.JWT.Secret, log)
	admin := middleware.RequireRole(log, string(entity.RoleAdmin))

	// Browsing the catalog requires authentication only
	r.With(auth).Get("/api/movies", movieHandler.List)

	// Catalog management is admin-only
	r.With(auth, admin).Post("/api/movies", movieHandler.Create)
	r.With(auth, admin).Delete("/api/movies/{id}", movieHandler.Delete)
}
