package response

import (
	"time"

	"movie-reservation/internal/data/entity"
)

type BookingResponse struct {
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	ShowtimeID string    `json:"showtime_id"`
	SeatIDs    []string  `json:"seat_ids"`
	Amount     float64   `json:"amount"`
	Hash       string    `json:"hash"`
	CreatedAt  time.Time `json:"created_at"`
}

// VerificationResponse is returned to staff checking a ticket at the door.
type VerificationResponse struct {
	Valid   bool            `json:"valid"`
	Booking BookingResponse `json:"booking"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	seatIDs := make([]string, len(booking.SeatIDs))
	for i, id := range booking.SeatIDs {
		seatIDs[i] = id.String()
	}

	return BookingResponse{
		BookingID:  booking.ID,
		UserID:     booking.UserID.String(),
		ShowtimeID: booking.ShowtimeID.String(),
		SeatIDs:    seatIDs,
		Amount:     booking.Amount,
		Hash:       booking.Hash,
		CreatedAt:  booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}
