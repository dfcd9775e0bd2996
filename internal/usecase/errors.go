package usecase

import (
	"errors"
	"strings"
)

var (
	// ErrForbidden is returned when the caller's role does not permit the
	// operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned on a failed login. The message never
	// reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
)

// SeatsUnavailableError reports a reservation conflict: one or more requested
// seats were already booked when the locks were acquired. The enclosing
// transaction has been rolled back, so the caller may retry with different
// seats.
type SeatsUnavailableError struct {
	SeatIDs []string
}

func (e *SeatsUnavailableError) Error() string {
	return "seats already booked: " + strings.Join(e.SeatIDs, ", ")
}
