package wire

import (
	"movie-reservation/internal/adaptor"
	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/middleware"
	"movie-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireShowtime configures the showtime and seat map routes
func wireShowtime(
	r chi.Router,
	showtimeHandler *adaptor.ShowtimeHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(config.JWT.Secret, log)
	admin := middleware.RequireRole(log, string(entity.RoleAdmin))

	r.With(auth).Get("/api/showtimes", showtimeHandler.List)
	r.With(auth).Get("/api/showtimes/{id}/seats", showtimeHandler.SeatMap)

	// Creating a showtime also generates its seat grid
	r.With(auth, admin).Post("/api/showtimes", showtimeHandler.Create)
	r.With(auth, admin).Delete("/api/showtimes/{id}", showtimeHandler.Delete)
}
