package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service   usecase.ReservationService
	analytics usecase.AnalyticsService
	log       *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, analytics usecase.AnalyticsService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service:   service,
		analytics: analytics,
		log:       log.With(zap.String("handler", "reservation")),
	}
}

// Reserve handles POST /api/book (user role)
func (h *ReservationHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "showtime_id and seat_ids are required")
		return
	}

	ticket, err := h.service.Reserve(r.Context(), identity, &req)
	if err != nil {
		var conflict *usecase.SeatsUnavailableError
		switch {
		case errors.As(err, &conflict):
			utils.WriteJSON(w, http.StatusBadRequest, map[string]any{
				"error":       "Some seats are already booked",
				"bookedSeats": conflict.SeatIDs,
			})
		case errors.Is(err, usecase.ErrForbidden):
			utils.ResponseForbidden(w, "Forbidden")
		case errors.Is(err, repository.ErrShowtimeNotFound):
			utils.ResponseNotFound(w, "Showtime not found")
		case errors.Is(err, repository.ErrSeatNotFound):
			utils.ResponseNotFound(w, "Seat not found")
		default:
			h.log.Error("Reservation failed", zap.Error(err))
			utils.ResponseInternalError(w, "Booking failed, please try again")
		}
		return
	}

	utils.ResponseOK(w, ticket)
}

// ListBookings handles GET /api/bookings (user sees own, admin sees all)
func (h *ReservationHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.ListBookings(r.Context(), identity)
	if err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			utils.ResponseForbidden(w, "Forbidden")
			return
		}
		h.log.Error("List bookings failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to list bookings")
		return
	}

	utils.ResponseOK(w, bookings)
}

// Cancel handles DELETE /api/cancel/{bookingId} (admin)
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "bookingId")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking id is required")
		return
	}

	if err := h.service.Cancel(r.Context(), identity, bookingID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			utils.ResponseForbidden(w, "Forbidden")
		case errors.Is(err, repository.ErrBookingNotFound):
			utils.ResponseNotFound(w, "Booking not found")
		default:
			h.log.Error("Cancel booking failed", zap.Error(err), zap.String("booking_id", bookingID))
			utils.ResponseInternalError(w, "Failed to cancel booking")
		}
		return
	}

	utils.ResponseMessage(w, "Booking cancelled")
}

// TicketQR handles GET /api/bookings/{bookingId}/qr (owner or admin)
func (h *ReservationHandler) TicketQR(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "bookingId")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking id is required")
		return
	}

	png, err := h.service.TicketQR(r.Context(), identity, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			utils.ResponseForbidden(w, "Forbidden")
		case errors.Is(err, repository.ErrBookingNotFound):
			utils.ResponseNotFound(w, "Booking not found")
		default:
			h.log.Error("Ticket QR failed", zap.Error(err), zap.String("booking_id", bookingID))
			utils.ResponseInternalError(w, "Failed to render ticket QR")
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Analytics handles GET /api/analytics (admin)
func (h *ReservationHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analytics.Aggregate(r.Context())
	if err != nil {
		h.log.Error("Analytics failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to aggregate analytics")
		return
	}

	utils.ResponseOK(w, analytics)
}
