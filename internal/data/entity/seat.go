package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Seat is one position in a showtime's fixed grid. Rows run A-J, numbers
// 1-10; the grid is created with the showtime and never resized. IsBooked
// flips false to true exactly once, inside a reservation transaction.
type Seat struct {
	ID         uuid.UUID `db:"id"`
	ShowtimeID uuid.UUID `db:"showtime_id"`
	RowLabel   string    `db:"row_label"`
	SeatNumber int       `db:"seat_number"`
	IsBooked   bool      `db:"is_booked"`
	CreatedAt  time.Time `db:"created_at"`
}

// Label renders the seat's grid position, e.g. "A1".
func (s *Seat) Label() string {
	return s.RowLabel + strconv.Itoa(s.SeatNumber)
}
