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

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// List handles GET /api/showtimes (authenticated)
func (h *ShowtimeHandler) List(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("List showtimes failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to list showtimes")
		return
	}

	utils.ResponseOK(w, showtimes)
}

// Create handles POST /api/showtimes (admin)
func (h *ShowtimeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	showtime, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			utils.ResponseBadRequest(w, "movie_id is required and must reference an existing movie")
			return
		}
		h.log.Error("Create showtime failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to create showtime")
		return
	}

	utils.ResponseOK(w, map[string]any{
		"message":     "Showtime added with auto-generated seats",
		"showtime_id": showtime.ID,
	})
}

// Delete handles DELETE /api/showtimes/{id} (admin)
func (h *ShowtimeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime id is required")
		return
	}

	if err := h.service.Delete(r.Context(), showtimeID); err != nil {
		if errors.Is(err, repository.ErrShowtimeNotFound) {
			utils.ResponseNotFound(w, "Showtime not found")
			return
		}
		h.log.Error("Delete showtime failed", zap.Error(err), zap.String("showtime_id", showtimeID))
		utils.ResponseInternalError(w, "Failed to delete showtime")
		return
	}

	utils.ResponseMessage(w, "Showtime and all related seats/bookings deleted successfully")
}

// SeatMap handles GET /api/showtimes/{id}/seats (authenticated)
func (h *ShowtimeHandler) SeatMap(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime id is required")
		return
	}

	seatMap, err := h.service.SeatMap(r.Context(), showtimeID)
	if err != nil {
		if errors.Is(err, repository.ErrShowtimeNotFound) {
			utils.ResponseNotFound(w, "Showtime not found")
			return
		}
		h.log.Error("Seat map failed", zap.Error(err), zap.String("showtime_id", showtimeID))
		utils.ResponseInternalError(w, "Failed to load seat map")
		return
	}

	utils.ResponseOK(w, seatMap)
}
