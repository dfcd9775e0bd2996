package request

type ReserveRequest struct {
	ShowtimeID string   `json:"showtime_id" validate:"required,uuid4"`
	SeatIDs    []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
}

type VerifyRequest struct {
	Hash string `json:"hash" validate:"required"`
}
