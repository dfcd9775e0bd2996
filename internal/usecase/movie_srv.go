package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultBasePrice applies when a movie is created without one.
const defaultBasePrice = 50.0

type MovieService interface {
	List(ctx context.Context) ([]response.MovieResponse, error)
	Create(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, movieID string) error
}

type movieService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) List(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) Create(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	basePrice := req.BasePrice
	if basePrice == 0 {
		basePrice = defaultBasePrice
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		BasePrice:   basePrice,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Float64("base_price", movie.BasePrice))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// Delete removes a movie and everything hanging off it: showtimes, their seat
// grids and their bookings, all in one transaction.
func (s *movieService) Delete(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return repository.ErrMovieNotFound
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

	showtimeIDs, err := s.repo.Showtime.FindIDsByMovieTx(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("list showtimes: %w", err)
	}

	for _, showtimeID := range showtimeIDs {
		if err := s.repo.Seat.DeleteByShowtimeTx(ctx, tx, showtimeID); err != nil {
			return fmt.Errorf("delete seats: %w", err)
		}
		if err := s.repo.Booking.DeleteByShowtimeTx(ctx, tx, showtimeID); err != nil {
			return fmt.Errorf("delete bookings: %w", err)
		}
		if err := s.repo.Showtime.DeleteTx(ctx, tx, showtimeID); err != nil {
			return fmt.Errorf("delete showtime: %w", err)
		}
	}

	if err := s.repo.Movie.DeleteTx(ctx, tx, id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	s.log.Info("Movie deleted with related data",
		zap.String("movie_id", movieID),
		zap.Int("showtimes", len(showtimeIDs)))

	return nil
}
