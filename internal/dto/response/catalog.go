package response

import "movie-reservation/internal/data/entity"

type MovieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		BasePrice:   movie.BasePrice,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}

type ShowtimeResponse struct {
	ID       string `json:"id"`
	MovieID  string `json:"movie_id"`
	ShowDate string `json:"show_date"`
	ShowTime string `json:"show_time"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:       showtime.ID.String(),
		MovieID:  showtime.MovieID.String(),
		ShowDate: showtime.ShowDate.Format("2006-01-02"),
		ShowTime: showtime.ShowTime.Format("15:04"),
	}
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	out := make([]ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		out[i] = ShowtimeToResponse(showtime)
	}
	return out
}

type SeatResponse struct {
	ID       string `json:"id"`
	Row      string `json:"row"`
	Number   int    `json:"number"`
	Label    string `json:"label"`
	IsBooked bool   `json:"is_booked"`
}

type SeatMapResponse struct {
	ShowtimeID string         `json:"showtime_id"`
	Seats      []SeatResponse `json:"seats"`
}

func SeatMapToResponse(showtimeID string, seats []*entity.Seat) SeatMapResponse {
	out := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		out[i] = SeatResponse{
			ID:       seat.ID.String(),
			Row:      seat.RowLabel,
			Number:   seat.SeatNumber,
			Label:    seat.Label(),
			IsBooked: seat.IsBooked,
		}
	}
	return SeatMapResponse{ShowtimeID: showtimeID, Seats: out}
}
