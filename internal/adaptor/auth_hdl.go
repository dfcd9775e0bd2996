package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			utils.ResponseBadRequest(w, "Email already registered")
			return
		}
		h.log.Error("Register failed", zap.Error(err))
		utils.ResponseInternalError(w, "Registration failed")
		return
	}

	utils.ResponseMessage(w, "User registered successfully")
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.ResponseUnauthorized(w, "Invalid email or password")
			return
		}
		h.log.Error("Login failed", zap.Error(err))
		utils.ResponseInternalError(w, "Login failed")
		return
	}

	utils.ResponseOK(w, auth)
}
