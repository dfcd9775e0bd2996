package entity

import (
	"time"

	"github.com/google/uuid"
)

type Showtime struct {
	Base
	MovieID  uuid.UUID `db:"movie_id"`
	ShowDate time.Time `db:"show_date"`
	ShowTime time.Time `db:"show_time"`
}
