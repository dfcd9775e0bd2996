package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/pkg/cache"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fixed seat grid generated for every showtime.
var gridRows = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

const gridSeatsPerRow = 10

type ShowtimeService interface {
	List(ctx context.Context) ([]response.ShowtimeResponse, error)
	Create(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error)
	Delete(ctx context.Context, showtimeID string) error
	SeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error)
}

type showtimeService struct {
	db    database.PgxIface
	repo  *repository.Repository
	cache *cache.SeatMapCache
	log   *zap.Logger
}

func NewShowtimeService(db database.PgxIface, repo *repository.Repository, seatMapCache *cache.SeatMapCache, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		db:    db,
		repo:  repo,
		cache: seatMapCache,
		log:   log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) List(ctx context.Context) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.repo.Showtime.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list showtimes: %w", err)
	}
	return response.ShowtimesToResponse(showtimes), nil
}

// Create inserts the showtime and its full seat grid in one transaction, so a
// showtime is never observable without its seats.
func (s *showtimeService) Create(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, repository.ErrMovieNotFound
	}

	showDate, err := time.Parse("2006-01-02", req.ShowDate)
	if err != nil {
		return nil, fmt.Errorf("invalid show_date %s: %w", req.ShowDate, err)
	}
	showTime, err := time.Parse("15:04", req.ShowTime)
	if err != nil {
		return nil, fmt.Errorf("invalid show_time %s: %w", req.ShowTime, err)
	}

	now := time.Now()
	showtime := &entity.Showtime{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:  movieID,
		ShowDate: showDate,
		ShowTime: showTime,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := s.repo.Showtime.CreateTx(ctx, tx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	if err := s.repo.Seat.CreateBatchTx(ctx, tx, GenerateSeatGrid(showtime.ID, now)); err != nil {
		return nil, fmt.Errorf("create seat grid: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	s.log.Info("Showtime created with seat grid",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", req.MovieID),
		zap.Int("seats", len(gridRows)*gridSeatsPerRow))

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) Delete(ctx context.Context, showtimeID string) error {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return repository.ErrShowtimeNotFound
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := s.repo.Seat.DeleteByShowtimeTx(ctx, tx, id); err != nil {
		return fmt.Errorf("delete seats: %w", err)
	}
	if err := s.repo.Booking.DeleteByShowtimeTx(ctx, tx, id); err != nil {
		return fmt.Errorf("delete bookings: %w", err)
	}
	if err := s.repo.Showtime.DeleteTx(ctx, tx, id); err != nil {
		return fmt.Errorf("delete showtime: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	s.cache.Invalidate(ctx, showtimeID)

	s.log.Info("Showtime deleted with related data", zap.String("showtime_id", showtimeID))
	return nil
}

// SeatMap returns the seat grid with booked flags, served from the Redis
// cache when fresh.
func (s *showtimeService) SeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	if payload, ok := s.cache.Get(ctx, showtimeID); ok {
		var cached response.SeatMapResponse
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			return &cached, nil
		}
		s.cache.Invalidate(ctx, showtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, repository.ErrShowtimeNotFound
	}

	seats, err := s.repo.Seat.FindByShowtime(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}

	resp := response.SeatMapToResponse(showtimeID, seats)

	if payload, err := json.Marshal(resp); err == nil {
		s.cache.Set(ctx, showtimeID, string(payload))
	}

	return &resp, nil
}

// GenerateSeatGrid builds the 10x10 seat set for a new showtime, rows A-J by
// numbers 1-10, all free.
func GenerateSeatGrid(showtimeID uuid.UUID, createdAt time.Time) []*entity.Seat {
	seats := make([]*entity.Seat, 0, len(gridRows)*gridSeatsPerRow)
	for _, row := range gridRows {
		for num := 1; num <= gridSeatsPerRow; num++ {
			seats = append(seats, &entity.Seat{
				ID:         uuid.New(),
				ShowtimeID: showtimeID,
				RowLabel:   row,
				SeatNumber: num,
				IsBooked:   false,
				CreatedAt:  createdAt,
			})
		}
	}
	return seats
}
