package wire

import (
	"movie-reservation/internal/adaptor"
	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/middleware"
	"movie-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReservation configures booking, cancellation and analytics routes
func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(config.JWT.Secret, log)
	user := middleware.RequireRole(log, string(entity.RoleUser))
	admin := middleware.RequireRole(log, string(entity.RoleAdmin))

	// Only customer accounts can book seats
	r.With(auth, user).Post("/api/book", reservationHandler.Reserve)

	// Users see their own bookings, admins see everything; the service
	// decides based on the caller's role
	r.With(auth).Get("/api/bookings", reservationHandler.ListBookings)
	r.With(auth).Get("/api/bookings/{bookingId}/qr", reservationHandler.TicketQR)

	r.With(auth, admin).Delete("/api/cancel/{bookingId}", reservationHandler.Cancel)
	r.With(auth, admin).Get("/api/analytics", reservationHandler.Analytics)
}
