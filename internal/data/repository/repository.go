package repository

import (
	"errors"

	"movie-reservation/pkg/database"

	"go.uber.org/zap"
)

// Sentinel errors shared by the repositories. Services compare with errors.Is
// and translate to wire responses.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrSeatNotFound     = errors.New("seat not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

type Repository struct {
	User     UserRepository
	Movie    MovieRepository
	Showtime ShowtimeRepository
	Seat     SeatRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Showtime: NewShowtimeRepository(db, log),
		Seat:     NewSeatRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
