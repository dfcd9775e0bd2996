package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking records seats reserved by a user for a showtime. It is written
// atomically with the seat flags flipping to booked; after commit its seat set
// is disjoint from every other booking's for the same showtime. The ID is a
// time-derived opaque string, Hash the verification hash printed on the
// ticket.
type Booking struct {
	ID         string      `db:"booking_id"`
	UserID     uuid.UUID   `db:"user_id"`
	ShowtimeID uuid.UUID   `db:"showtime_id"`
	SeatIDs    []uuid.UUID `db:"seat_ids"`
	Amount     float64     `db:"amount"`
	Hash       string      `db:"hash"`
	CreatedAt  time.Time   `db:"created_at"`
}
