package adaptor

import (
	"movie-reservation/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Movie       *MovieHandler
	Showtime    *ShowtimeHandler
	Reservation *ReservationHandler
	Verify      *VerifyHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Movie:       NewMovieHandler(service.Movie, log),
		Showtime:    NewShowtimeHandler(service.Showtime, log),
		Reservation: NewReservationHandler(service.Reservation, service.Analytics, log),
		Verify:      NewVerifyHandler(service.Verification, log),
	}
}
