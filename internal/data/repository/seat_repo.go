package repository

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatRepository interface {
	CreateBatchTx(ctx context.Context, q database.Querier, seats []*entity.Seat) error
	FindByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Seat, error)
	LockForBookingTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]*entity.Seat, error)
	MarkBookedTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatIDs []uuid.UUID) error
	DeleteByShowtimeTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) CreateBatchTx(ctx context.Context, q database.Querier, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO seats (id, showtime_id, row_label, seat_number, is_booked, created_at) VALUES `
	args := []interface{}{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6)

		args = append(args,
			seat.ID,
			seat.ShowtimeID,
			seat.RowLabel,
			seat.SeatNumber,
			seat.IsBooked,
			seat.CreatedAt,
		)
	}

	_, err := q.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("failed to create batch seats: %w", err)
	}

	return nil
}

func (r *seatRepository) FindByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, showtime_id, row_label, seat_number, is_booked, created_at
		FROM seats
		WHERE showtime_id = $1
		ORDER BY row_label, seat_number
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to list seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.ShowtimeID,
			&seat.RowLabel,
			&seat.SeatNumber,
			&seat.IsBooked,
			&seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, nil
}

// LockForBookingTx acquires FOR UPDATE row locks on exactly the requested
// seats, scoped to the showtime, and returns their current state. The query
// locks in ascending id order and seatIDs are sorted the same way first, so
// two overlapping requests always contend for their first shared seat instead
// of deadlocking. All requested seats are locked before the caller inspects
// any booked flag. Returns ErrSeatNotFound when a requested seat does not
// exist under the showtime.
func (r *seatRepository) LockForBookingTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]*entity.Seat, error) {
	if len(seatIDs) == 0 {
		return nil, ErrSeatNotFound
	}

	ids := sortedSeatIDs(seatIDs)

	query := `
		SELECT id, showtime_id, row_label, seat_number, is_booked, created_at
		FROM seats
		WHERE showtime_id = $1 AND id = ANY($2)
		ORDER BY id
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, showtimeID, ids)
	if err != nil {
		r.log.Error("Failed to lock seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.Int("seat_count", len(ids)),
		)
		return nil, fmt.Errorf("failed to lock seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.ShowtimeID,
			&seat.RowLabel,
			&seat.SeatNumber,
			&seat.IsBooked,
			&seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan locked seat", zap.Error(err))
			return nil, fmt.Errorf("failed to scan locked seat: %w", err)
		}
		seats = append(seats, &seat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to lock seats: %w", err)
	}

	if len(seats) != len(ids) {
		return nil, ErrSeatNotFound
	}

	return seats, nil
}

// MarkBookedTx flips the booked flag on the given seats. Callers must hold
// FOR UPDATE locks on them in the same transaction.
func (r *seatRepository) MarkBookedTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatIDs []uuid.UUID) error {
	query := `UPDATE seats SET is_booked = TRUE WHERE showtime_id = $1 AND id = ANY($2)`

	result, err := q.Exec(ctx, query, showtimeID, seatIDs)
	if err != nil {
		r.log.Error("Failed to mark seats booked",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.Int("seat_count", len(seatIDs)),
		)
		return fmt.Errorf("failed to mark seats booked: %w", err)
	}

	if int(result.RowsAffected()) != len(seatIDs) {
		return fmt.Errorf("marked %d of %d seats booked", result.RowsAffected(), len(seatIDs))
	}

	return nil
}

func (r *seatRepository) DeleteByShowtimeTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID) error {
	_, err := q.Exec(ctx, `DELETE FROM seats WHERE showtime_id = $1`, showtimeID)
	if err != nil {
		r.log.Error("Failed to delete seats for showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return fmt.Errorf("failed to delete seats: %w", err)
	}

	return nil
}

// sortedSeatIDs returns a deduplicated copy in canonical (byte-wise
// ascending) order, matching the ORDER BY id lock order.
func sortedSeatIDs(seatIDs []uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(seatIDs))
	seen := make(map[uuid.UUID]struct{}, len(seatIDs))
	for _, id := range seatIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	return ids
}
