package response

import "movie-reservation/internal/data/repository"

type AnalyticsResponse struct {
	TotalBookings  int64                `json:"totalBookings"`
	TotalSales     float64              `json:"totalSales"`
	TopCustomer    *TopCustomerResponse `json:"topCustomer"`
	HighestBooking *BookingResponse     `json:"highestBooking"`
	TopMovie       *TopMovieResponse    `json:"topMovie"`
}

type TopCustomerResponse struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	TotalSpent float64 `json:"totalSpent"`
}

type TopMovieResponse struct {
	MovieID      string `json:"movie_id"`
	Title        string `json:"title"`
	BookingCount int64  `json:"bookingCount"`
}

func AnalyticsToResponse(analytics *repository.Analytics) AnalyticsResponse {
	out := AnalyticsResponse{
		TotalBookings: analytics.TotalBookings,
		TotalSales:    analytics.TotalSales,
	}

	if analytics.TopCustomer != nil {
		out.TopCustomer = &TopCustomerResponse{
			UserID:     analytics.TopCustomer.UserID.String(),
			Name:       analytics.TopCustomer.Name,
			TotalSpent: analytics.TopCustomer.TotalSpent,
		}
	}

	if analytics.HighestBooking != nil {
		booking := BookingToResponse(analytics.HighestBooking)
		out.HighestBooking = &booking
	}

	if analytics.TopMovie != nil {
		out.TopMovie = &TopMovieResponse{
			MovieID:      analytics.TopMovie.MovieID.String(),
			Title:        analytics.TopMovie.Title,
			BookingCount: analytics.TopMovie.BookingCount,
		}
	}

	return out
}
