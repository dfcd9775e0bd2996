package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateSeatGrid(t *testing.T) {
	showtimeID := uuid.New()
	createdAt := time.Now()

	seats := GenerateSeatGrid(showtimeID, createdAt)

	if len(seats) != 100 {
		t.Fatalf("expected 100 seats, got %d", len(seats))
	}

	labels := make(map[string]bool, len(seats))
	ids := make(map[uuid.UUID]bool, len(seats))
	for _, seat := range seats {
		if seat.ShowtimeID != showtimeID {
			t.Fatalf("seat %s bound to showtime %s, want %s", seat.Label(), seat.ShowtimeID, showtimeID)
		}
		if seat.IsBooked {
			t.Errorf("seat %s generated as booked", seat.Label())
		}
		if seat.SeatNumber < 1 || seat.SeatNumber > 10 {
			t.Errorf("seat number %d out of range", seat.SeatNumber)
		}
		if labels[seat.Label()] {
			t.Errorf("duplicate seat label %s", seat.Label())
		}
		labels[seat.Label()] = true
		if ids[seat.ID] {
			t.Errorf("duplicate seat id %s", seat.ID)
		}
		ids[seat.ID] = true
	}

	// Every row A-J appears with seats 1-10.
	for _, row := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		if !labels[row+"1"] || !labels[row+"10"] {
			t.Errorf("row %s incomplete", row)
		}
	}
}
