package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/internal/pricing"
	"movie-reservation/internal/ticket"
	"movie-reservation/pkg/cache"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type ReservationService interface {
	// Reserve books the requested seats for the caller inside one atomic
	// transaction and returns the issued ticket.
	Reserve(ctx context.Context, identity utils.Identity, req *request.ReserveRequest) (*response.TicketEnvelope, error)

	// ListBookings returns all bookings for admins and the caller's own
	// bookings for users.
	ListBookings(ctx context.Context, identity utils.Identity) ([]response.BookingResponse, error)

	// Cancel deletes a booking record (admin only). The referenced seats stay
	// flagged booked.
	Cancel(ctx context.Context, identity utils.Identity, bookingID string) error

	// TicketQR renders the booking's verification hash as a PNG QR code for
	// the booking owner or an admin.
	TicketQR(ctx context.Context, identity utils.Identity, bookingID string) ([]byte, error)
}

type reservationService struct {
	db     database.PgxIface
	repo   *repository.Repository
	issuer *ticket.Issuer
	cache  *cache.SeatMapCache
	log    *zap.Logger
}

func NewReservationService(
	db database.PgxIface,
	repo *repository.Repository,
	issuer *ticket.Issuer,
	seatMapCache *cache.SeatMapCache,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		db:     db,
		repo:   repo,
		issuer: issuer,
		cache:  seatMapCache,
		log:    log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) Reserve(ctx context.Context, identity utils.Identity, req *request.ReserveRequest) (*response.TicketEnvelope, error) {
	if identity.Role != string(entity.RoleUser) {
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", req.ShowtimeID, err)
	}

	seatIDs := make([]uuid.UUID, len(req.SeatIDs))
	for i, seatIDStr := range req.SeatIDs {
		seatID, err := uuid.Parse(seatIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid seat ID format %s: %w", seatIDStr, err)
		}
		seatIDs[i] = seatID
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin reservation transaction", zap.Error(err))
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	// Lock every requested seat before inspecting any booked flag. Locking a
	// subset first and deciding later would let a concurrent request lock the
	// rest and double-book or deadlock.
	seats, err := s.repo.Seat.LockForBookingTx(ctx, tx, showtimeID, seatIDs)
	if err != nil {
		return nil, err
	}

	var conflicts []string
	for _, seat := range seats {
		if seat.IsBooked {
			conflicts = append(conflicts, seat.ID.String())
		}
	}
	if len(conflicts) > 0 {
		s.log.Info("Reservation conflict",
			zap.String("showtime_id", req.ShowtimeID),
			zap.Strings("booked_seats", conflicts))
		return nil, &SeatsUnavailableError{SeatIDs: conflicts}
	}

	basePrice, err := s.repo.Showtime.BasePriceTx(ctx, tx, showtimeID)
	if err != nil {
		return nil, err
	}

	rows := make([]string, len(seats))
	labels := make([]string, len(seats))
	lockedIDs := make([]uuid.UUID, len(seats))
	for i, seat := range seats {
		rows[i] = seat.RowLabel
		labels[i] = seat.Label()
		lockedIDs[i] = seat.ID
	}
	totalAmount := pricing.Total(basePrice, rows)

	if err := s.repo.Seat.MarkBookedTx(ctx, tx, showtimeID, lockedIDs); err != nil {
		return nil, err
	}

	bookingID, hash := s.issuer.Issue()
	booking := &entity.Booking{
		ID:         bookingID,
		UserID:     identity.UserID,
		ShowtimeID: showtimeID,
		SeatIDs:    lockedIDs,
		Amount:     totalAmount,
		Hash:       hash,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
		return nil, err
	}

	// Read the ticket fields back through the booking row so the response
	// reports exactly what is being committed.
	details, err := s.repo.Booking.TicketDetailsTx(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit reservation",
			zap.Error(err),
			zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	s.cache.Invalidate(ctx, req.ShowtimeID)

	s.log.Info("Reservation committed",
		zap.String("booking_id", bookingID),
		zap.String("user_id", identity.UserID.String()),
		zap.String("showtime_id", req.ShowtimeID),
		zap.Int("seat_count", len(lockedIDs)),
		zap.Float64("amount", totalAmount))

	return &response.TicketEnvelope{
		Ticket: response.TicketResponse{
			BookingID:   bookingID,
			UserName:    details.UserName,
			MovieName:   details.MovieName,
			ShowDate:    details.ShowDate.Format("2006-01-02"),
			ShowTime:    details.ShowTime.Format("15:04"),
			Seats:       labels,
			TotalAmount: totalAmount,
			Hash:        hash,
		},
	}, nil
}

func (s *reservationService) ListBookings(ctx context.Context, identity utils.Identity) ([]response.BookingResponse, error) {
	switch identity.Role {
	case string(entity.RoleAdmin):
		bookings, err := s.repo.Booking.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}
		return response.BookingsToResponse(bookings), nil
	case string(entity.RoleUser):
		bookings, err := s.repo.Booking.FindByUserID(ctx, identity.UserID)
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}
		return response.BookingsToResponse(bookings), nil
	}
	return nil, ErrForbidden
}

func (s *reservationService) Cancel(ctx context.Context, identity utils.Identity, bookingID string) error {
	if identity.Role != string(entity.RoleAdmin) {
		return ErrForbidden
	}

	if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
		return err
	}

	// The booking row is gone but its seats stay flagged booked. Cancellation
	// does not release seats back into inventory.
	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

func (s *reservationService) TicketQR(ctx context.Context, identity utils.Identity, bookingID string) ([]byte, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, repository.ErrBookingNotFound
	}

	if identity.Role != string(entity.RoleAdmin) && booking.UserID != identity.UserID {
		return nil, ErrForbidden
	}

	png, err := qrcode.Encode(booking.Hash, qrcode.Medium, 256)
	if err != nil {
		s.log.Error("Failed to render ticket QR",
			zap.Error(err),
			zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("render QR: %w", err)
	}

	return png, nil
}
