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

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// List handles GET /api/movies (authenticated)
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("List movies failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to list movies")
		return
	}

	utils.ResponseOK(w, movies)
}

// Create handles POST /api/movies (admin)
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	movie, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("Create movie failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to create movie")
		return
	}

	utils.ResponseOK(w, movie)
}

// Delete handles DELETE /api/movies/{id} (admin)
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie id is required")
		return
	}

	if err := h.service.Delete(r.Context(), movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			utils.ResponseNotFound(w, "Movie not found")
			return
		}
		h.log.Error("Delete movie failed", zap.Error(err), zap.String("movie_id", movieID))
		utils.ResponseInternalError(w, "Failed to delete movie")
		return
	}

	utils.ResponseMessage(w, "Movie and all related data deleted successfully")
}
