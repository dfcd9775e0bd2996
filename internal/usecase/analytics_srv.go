package usecase

import (
	"context"
	"fmt"

	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/response"

	"go.uber.org/zap"
)

type AnalyticsService interface {
	Aggregate(ctx context.Context) (*response.AnalyticsResponse, error)
}

type analyticsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAnalyticsService(repo *repository.Repository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		repo: repo,
		log:  log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) Aggregate(ctx context.Context) (*response.AnalyticsResponse, error) {
	analytics, err := s.repo.Booking.Aggregate(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate bookings: %w", err)
	}

	resp := response.AnalyticsToResponse(analytics)
	return &resp, nil
}
