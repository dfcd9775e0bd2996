package usecase

import (
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/ticket"
	"movie-reservation/pkg/cache"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Movie        MovieService
	Showtime     ShowtimeService
	Reservation  ReservationService
	Verification VerificationService
	Analytics    AnalyticsService
}

func NewService(
	db database.PgxIface,
	repo *repository.Repository,
	seatMapCache *cache.SeatMapCache,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Movie:        NewMovieService(db, repo, log),
		Showtime:     NewShowtimeService(db, repo, seatMapCache, log),
		Reservation:  NewReservationService(db, repo, ticket.NewIssuer(), seatMapCache, log),
		Verification: NewVerificationService(repo, log),
		Analytics:    NewAnalyticsService(repo, log),
	}
}
