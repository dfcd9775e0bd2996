package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"

	"go.uber.org/zap"
)

type VerifyHandler struct {
	service usecase.VerificationService
	log     *zap.Logger
}

func NewVerifyHandler(service usecase.VerificationService, log *zap.Logger) *VerifyHandler {
	return &VerifyHandler{
		service: service,
		log:     log.With(zap.String("handler", "verify")),
	}
}

// Verify handles POST /api/verify (staff role)
func (h *VerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Hash is required")
		return
	}

	result, err := h.service.Verify(r.Context(), identity, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			utils.ResponseForbidden(w, "Forbidden: Only staff can verify tickets")
		case errors.Is(err, repository.ErrBookingNotFound):
			utils.ResponseNotFound(w, "Ticket not found")
		default:
			h.log.Error("Ticket verification failed", zap.Error(err))
			utils.ResponseInternalError(w, "Verification failed, please try again")
		}
		return
	}

	utils.ResponseOK(w, result)
}
