package usecase

import (
	"context"
	"fmt"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/pkg/utils"

	"go.uber.org/zap"
)

type VerificationService interface {
	// Verify looks up a booking by its ticket hash for staff check-in. An
	// unknown hash is a normal outcome, reported as ErrBookingNotFound, not a
	// store failure. Read-only; no locks are taken.
	Verify(ctx context.Context, identity utils.Identity, req *request.VerifyRequest) (*response.VerificationResponse, error)
}

type verificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVerificationService(repo *repository.Repository, log *zap.Logger) VerificationService {
	return &verificationService{
		repo: repo,
		log:  log.With(zap.String("service", "verification")),
	}
}

func (s *verificationService) Verify(ctx context.Context, identity utils.Identity, req *request.VerifyRequest) (*response.VerificationResponse, error) {
	if identity.Role != string(entity.RoleStaff) {
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByHash(ctx, req.Hash)
	if err != nil {
		return nil, fmt.Errorf("find booking by hash: %w", err)
	}
	if booking == nil {
		return nil, repository.ErrBookingNotFound
	}

	s.log.Info("Ticket verified", zap.String("booking_id", booking.ID))

	return &response.VerificationResponse{
		Valid:   true,
		Booking: response.BookingToResponse(booking),
	}, nil
}
