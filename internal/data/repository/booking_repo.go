package repository

import (
	"context"
	"fmt"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TicketDetails is the caller-facing slice of a booking, read back from the
// committed rows so the ticket never diverges from persisted state.
type TicketDetails struct {
	UserName  string
	MovieName string
	ShowDate  time.Time
	ShowTime  time.Time
}

// Analytics aggregates booking figures for the admin dashboard.
type Analytics struct {
	TotalBookings  int64
	TotalSales     float64
	TopCustomer    *TopCustomer
	HighestBooking *entity.Booking
	TopMovie       *TopMovie
}

type TopCustomer struct {
	UserID     uuid.UUID
	Name       string
	TotalSpent float64
}

type TopMovie struct {
	MovieID      uuid.UUID
	Title        string
	BookingCount int64
}

type BookingRepository interface {
	CreateTx(ctx context.Context, q database.Querier, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByHash(ctx context.Context, hash string) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	TicketDetailsTx(ctx context.Context, q database.Querier, bookingID string) (*TicketDetails, error)
	Delete(ctx context.Context, id string) error
	DeleteByShowtimeTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID) error
	Aggregate(ctx context.Context) (*Analytics, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateTx(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, user_id, showtime_id, seat_ids, amount, hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ShowtimeID,
		booking.SeatIDs,
		booking.Amount,
		booking.Hash,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

const bookingColumns = `booking_id, user_id, showtime_id, seat_ids, amount, hash, created_at`

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.SeatIDs,
		&booking.Amount,
		&booking.Hash,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByHash(ctx context.Context, hash string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE hash = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, hash))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by hash", zap.Error(err))
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ShowtimeID,
			&booking.SeatIDs,
			&booking.Amount,
			&booking.Hash,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

// TicketDetailsTx reads the joined user, movie and showtime fields for the
// ticket payload. Runs in the reservation transaction right after the booking
// insert so the response reflects exactly what commits.
func (r *bookingRepository) TicketDetailsTx(ctx context.Context, q database.Querier, bookingID string) (*TicketDetails, error) {
	query := `
		SELECT u.name, m.title, s.show_date, s.show_time
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		WHERE b.booking_id = $1
	`

	var details TicketDetails
	err := q.QueryRow(ctx, query, bookingID).Scan(
		&details.UserName,
		&details.MovieName,
		&details.ShowDate,
		&details.ShowTime,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		r.log.Error("Failed to read ticket details",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("failed to read ticket details: %w", err)
	}

	return &details, nil
}

// Delete removes only the booking row. The referenced seats keep their booked
// flag.
func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) DeleteByShowtimeTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID) error {
	_, err := q.Exec(ctx, `DELETE FROM bookings WHERE showtime_id = $1`, showtimeID)
	if err != nil {
		r.log.Error("Failed to delete bookings for showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return fmt.Errorf("failed to delete bookings: %w", err)
	}

	return nil
}

func (r *bookingRepository) Aggregate(ctx context.Context) (*Analytics, error) {
	analytics := &Analytics{}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM bookings`,
	).Scan(&analytics.TotalBookings, &analytics.TotalSales)
	if err != nil {
		r.log.Error("Failed to aggregate booking totals", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate bookings: %w", err)
	}

	var top TopCustomer
	err = r.db.QueryRow(ctx, `
		SELECT u.id, u.name, SUM(b.amount) AS total_spent
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		GROUP BY u.id, u.name
		ORDER BY total_spent DESC
		LIMIT 1
	`).Scan(&top.UserID, &top.Name, &top.TotalSpent)
	if err == nil {
		analytics.TopCustomer = &top
	} else if err != pgx.ErrNoRows {
		r.log.Error("Failed to aggregate top customer", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate top customer: %w", err)
	}

	highest, err := r.scanBooking(r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY amount DESC LIMIT 1`,
	))
	if err == nil {
		analytics.HighestBooking = highest
	} else if err != pgx.ErrNoRows {
		r.log.Error("Failed to find highest booking", zap.Error(err))
		return nil, fmt.Errorf("failed to find highest booking: %w", err)
	}

	var movie TopMovie
	err = r.db.QueryRow(ctx, `
		SELECT m.id, m.title, COUNT(b.booking_id) AS booking_count
		FROM bookings b
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		GROUP BY m.id, m.title
		ORDER BY booking_count DESC
		LIMIT 1
	`).Scan(&movie.MovieID, &movie.Title, &movie.BookingCount)
	if err == nil {
		analytics.TopMovie = &movie
	} else if err != pgx.ErrNoRows {
		r.log.Error("Failed to aggregate top movie", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate top movie: %w", err)
	}

	return analytics, nil
}
