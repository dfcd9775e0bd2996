package repository

import (
	"context"
	"fmt"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	CreateTx(ctx context.Context, q database.Querier, showtime *entity.Showtime) error
	FindAll(ctx context.Context) ([]*entity.Showtime, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindIDsByMovieTx(ctx context.Context, q database.Querier, movieID uuid.UUID) ([]uuid.UUID, error)
	BasePriceTx(ctx context.Context, q database.Querier, id uuid.UUID) (float64, error)
	DeleteTx(ctx context.Context, q database.Querier, id uuid.UUID) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) CreateTx(ctx context.Context, q database.Querier, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, show_date, show_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.ShowDate,
		showtime.ShowTime,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
		)
		return fmt.Errorf("failed to create showtime: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, show_date, show_time, created_at, updated_at
		FROM showtimes
		ORDER BY show_date, show_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list showtimes", zap.Error(err))
		return nil, fmt.Errorf("failed to list showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.ShowDate,
			&showtime.ShowTime,
			&showtime.CreatedAt,
			&showtime.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan showtime: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	return showtimes, nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, show_date, show_time, created_at, updated_at
		FROM showtimes
		WHERE id = $1
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.ShowDate,
		&showtime.ShowTime,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find showtime: %w", err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindIDsByMovieTx(ctx context.Context, q database.Querier, movieID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := q.Query(ctx, `SELECT id FROM showtimes WHERE movie_id = $1`, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list showtimes for movie: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan showtime id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// BasePriceTx resolves the base price of the movie screened at the showtime.
// Runs inside the reservation transaction so the price read is consistent
// with the seat locks.
func (r *showtimeRepository) BasePriceTx(ctx context.Context, q database.Querier, id uuid.UUID) (float64, error) {
	query := `
		SELECT m.base_price
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		WHERE s.id = $1
	`

	var basePrice float64
	err := q.QueryRow(ctx, query, id).Scan(&basePrice)
	if err == pgx.ErrNoRows {
		return 0, ErrShowtimeNotFound
	}
	if err != nil {
		r.log.Error("Failed to resolve base price",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return 0, fmt.Errorf("failed to resolve base price: %w", err)
	}

	return basePrice, nil
}

func (r *showtimeRepository) DeleteTx(ctx context.Context, q database.Querier, id uuid.UUID) error {
	result, err := q.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return fmt.Errorf("failed to delete showtime: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrShowtimeNotFound
	}

	return nil
}
