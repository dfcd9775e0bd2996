// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-reservation/internal/adaptor"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/cache"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/middleware"
	"movie-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	db database.PgxIface,
	repo *repository.Repository,
	seatMapCache *cache.SeatMapCache,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services and handlers
	service := usecase.NewService(db, repo, seatMapCache, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireMovie(r, handler.Movie, config, logger)
	wireShowtime(r, handler.Showtime, config, logger)
	wireReservation(r, handler.Reservation, config, logger)
	wireVerify(r, handler.Verify, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
