package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/ticket"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// fakeTx satisfies pgx.Tx through embedding; only Commit and Rollback are
// implemented, which is all the reservation flow calls on it directly.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	database.PgxIface
	tx *fakeTx
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return d.tx, nil
}

type fakeSeatRepo struct {
	repository.SeatRepository
	seats       []*entity.Seat
	markedCalls int
}

func (f *fakeSeatRepo) LockForBookingTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]*entity.Seat, error) {
	var out []*entity.Seat
	for _, id := range seatIDs {
		found := false
		for _, seat := range f.seats {
			if seat.ID == id && seat.ShowtimeID == showtimeID {
				out = append(out, seat)
				found = true
				break
			}
		}
		if !found {
			return nil, repository.ErrSeatNotFound
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) MarkBookedTx(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatIDs []uuid.UUID) error {
	f.markedCalls++
	for _, id := range seatIDs {
		for _, seat := range f.seats {
			if seat.ID == id {
				seat.IsBooked = true
			}
		}
	}
	return nil
}

type fakeShowtimeRepo struct {
	repository.ShowtimeRepository
	basePrice float64
	priceErr  error
}

func (f *fakeShowtimeRepo) BasePriceTx(ctx context.Context, q database.Querier, id uuid.UUID) (float64, error) {
	if f.priceErr != nil {
		return 0, f.priceErr
	}
	return f.basePrice, nil
}

type fakeBookingRepo struct {
	repository.BookingRepository
	created *entity.Booking
	details *repository.TicketDetails
	deleted []string
	all     []*entity.Booking
	byUser  []*entity.Booking
}

func (f *fakeBookingRepo) CreateTx(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	f.created = booking
	return nil
}

func (f *fakeBookingRepo) TicketDetailsTx(ctx context.Context, q database.Querier, bookingID string) (*repository.TicketDetails, error) {
	if f.details == nil {
		return nil, repository.ErrBookingNotFound
	}
	return f.details, nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return f.all, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	return f.byUser, nil
}

func seatFor(showtimeID uuid.UUID, row string, number int, booked bool) *entity.Seat {
	return &entity.Seat{
		ID:         uuid.New(),
		ShowtimeID: showtimeID,
		RowLabel:   row,
		SeatNumber: number,
		IsBooked:   booked,
	}
}

func newTestReservation(seats *fakeSeatRepo, showtimes *fakeShowtimeRepo, bookings *fakeBookingRepo) (*reservationService, *fakeTx) {
	tx := &fakeTx{}
	repo := &repository.Repository{
		Seat:     seats,
		Showtime: showtimes,
		Booking:  bookings,
	}
	svc := NewReservationService(&fakeDB{tx: tx}, repo, ticket.NewIssuer(), nil, zap.NewNop())
	return svc.(*reservationService), tx
}

func userIdentity() utils.Identity {
	return utils.Identity{UserID: uuid.New(), Role: string(entity.RoleUser)}
}

func TestReserve_Success(t *testing.T) {
	showtimeID := uuid.New()
	a1 := seatFor(showtimeID, "A", 1, false)
	c1 := seatFor(showtimeID, "C", 1, false)
	g1 := seatFor(showtimeID, "G", 1, false)

	seats := &fakeSeatRepo{seats: []*entity.Seat{a1, c1, g1}}
	showtimes := &fakeShowtimeRepo{basePrice: 100}
	bookings := &fakeBookingRepo{details: &repository.TicketDetails{
		UserName:  "alice",
		MovieName: "Inception",
		ShowDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ShowTime:  time.Date(0, 1, 1, 19, 30, 0, 0, time.UTC),
	}}

	svc, tx := newTestReservation(seats, showtimes, bookings)
	identity := userIdentity()

	envelope, err := svc.Reserve(context.Background(), identity, &request.ReserveRequest{
		ShowtimeID: showtimeID.String(),
		SeatIDs:    []string{a1.ID.String(), c1.ID.String(), g1.ID.String()},
	})
	if err != nil {
		t.Fatalf("Reserve returned error: %v", err)
	}

	tk := envelope.Ticket
	// 100 * (1.5 VIP + 1.25 balcony + 1.0 normal)
	if tk.TotalAmount != 375 {
		t.Errorf("expected total 375, got %v", tk.TotalAmount)
	}
	if tk.BookingID == "" || len(tk.Hash) != 64 {
		t.Errorf("expected booking id and 64-char hash, got id=%q hash=%q", tk.BookingID, tk.Hash)
	}
	if tk.UserName != "alice" || tk.MovieName != "Inception" {
		t.Errorf("unexpected ticket details: %+v", tk)
	}
	if tk.ShowDate != "2026-09-01" || tk.ShowTime != "19:30" {
		t.Errorf("unexpected show date/time: %q %q", tk.ShowDate, tk.ShowTime)
	}
	if len(tk.Seats) != 3 || tk.Seats[0] != "A1" || tk.Seats[1] != "C1" || tk.Seats[2] != "G1" {
		t.Errorf("expected seat labels [A1 C1 G1], got %v", tk.Seats)
	}

	if bookings.created == nil {
		t.Fatal("expected booking to be persisted")
	}
	if bookings.created.Amount != 375 {
		t.Errorf("persisted amount = %v, want 375", bookings.created.Amount)
	}
	if bookings.created.UserID != identity.UserID {
		t.Errorf("persisted user id = %v, want %v", bookings.created.UserID, identity.UserID)
	}
	if bookings.created.Hash != tk.Hash || bookings.created.ID != tk.BookingID {
		t.Error("ticket id/hash do not match the persisted booking")
	}

	if !a1.IsBooked || !c1.IsBooked || !g1.IsBooked {
		t.Error("expected all reserved seats to be flagged booked")
	}
	if !tx.committed {
		t.Error("expected transaction to commit")
	}
	if tx.rolledBack {
		t.Error("transaction must not roll back after commit")
	}
}

func TestReserve_SeatConflict(t *testing.T) {
	showtimeID := uuid.New()
	free := seatFor(showtimeID, "A", 1, false)
	taken := seatFor(showtimeID, "A", 2, true)

	seats := &fakeSeatRepo{seats: []*entity.Seat{free, taken}}
	svc, tx := newTestReservation(seats, &fakeShowtimeRepo{basePrice: 100}, &fakeBookingRepo{})

	_, err := svc.Reserve(context.Background(), userIdentity(), &request.ReserveRequest{
		ShowtimeID: showtimeID.String(),
		SeatIDs:    []string{free.ID.String(), taken.ID.String()},
	})

	var conflict *SeatsUnavailableError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SeatsUnavailableError, got %v", err)
	}
	if len(conflict.SeatIDs) != 1 || conflict.SeatIDs[0] != taken.ID.String() {
		t.Errorf("expected conflict on %s, got %v", taken.ID, conflict.SeatIDs)
	}

	if seats.markedCalls != 0 {
		t.Error("no seats may be marked booked on conflict")
	}
	if free.IsBooked {
		t.Error("free seat must stay free after a rejected request")
	}
	if tx.committed {
		t.Error("conflicting transaction must not commit")
	}
	if !tx.rolledBack {
		t.Error("conflicting transaction must roll back")
	}
}

func TestReserve_ShowtimeMissing(t *testing.T) {
	showtimeID := uuid.New()
	seat := seatFor(showtimeID, "A", 1, false)

	seats := &fakeSeatRepo{seats: []*entity.Seat{seat}}
	showtimes := &fakeShowtimeRepo{priceErr: repository.ErrShowtimeNotFound}
	bookings := &fakeBookingRepo{}
	svc, tx := newTestReservation(seats, showtimes, bookings)

	_, err := svc.Reserve(context.Background(), userIdentity(), &request.ReserveRequest{
		ShowtimeID: showtimeID.String(),
		SeatIDs:    []string{seat.ID.String()},
	})
	if !errors.Is(err, repository.ErrShowtimeNotFound) {
		t.Fatalf("expected ErrShowtimeNotFound, got %v", err)
	}
	if bookings.created != nil {
		t.Error("no booking may be created for a missing showtime")
	}
	if !tx.rolledBack || tx.committed {
		t.Error("failed transaction must roll back without committing")
	}
}

func TestReserve_UnknownSeat(t *testing.T) {
	showtimeID := uuid.New()
	svc, tx := newTestReservation(&fakeSeatRepo{}, &fakeShowtimeRepo{basePrice: 50}, &fakeBookingRepo{})

	_, err := svc.Reserve(context.Background(), userIdentity(), &request.ReserveRequest{
		ShowtimeID: showtimeID.String(),
		SeatIDs:    []string{uuid.NewString()},
	})
	if !errors.Is(err, repository.ErrSeatNotFound) {
		t.Fatalf("expected ErrSeatNotFound, got %v", err)
	}
	if !tx.rolledBack {
		t.Error("failed transaction must roll back")
	}
}

func TestReserve_RejectsNonUserRoles(t *testing.T) {
	svc, _ := newTestReservation(&fakeSeatRepo{}, &fakeShowtimeRepo{}, &fakeBookingRepo{})

	for _, role := range []string{string(entity.RoleStaff), string(entity.RoleAdmin)} {
		identity := utils.Identity{UserID: uuid.New(), Role: role}
		_, err := svc.Reserve(context.Background(), identity, &request.ReserveRequest{
			ShowtimeID: uuid.NewString(),
			SeatIDs:    []string{uuid.NewString()},
		})
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestReserve_RejectsEmptySeatList(t *testing.T) {
	svc, tx := newTestReservation(&fakeSeatRepo{}, &fakeShowtimeRepo{}, &fakeBookingRepo{})

	_, err := svc.Reserve(context.Background(), userIdentity(), &request.ReserveRequest{
		ShowtimeID: uuid.NewString(),
		SeatIDs:    nil,
	})
	if err == nil {
		t.Fatal("expected validation error for empty seat list")
	}
	if tx.committed || tx.rolledBack {
		t.Error("no transaction may be opened for an invalid request")
	}
}

func TestCancel_AdminOnly(t *testing.T) {
	bookings := &fakeBookingRepo{}
	seat := seatFor(uuid.New(), "A", 1, true)
	seats := &fakeSeatRepo{seats: []*entity.Seat{seat}}
	svc, _ := newTestReservation(seats, &fakeShowtimeRepo{}, bookings)

	if err := svc.Cancel(context.Background(), userIdentity(), "1700000000000"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for user, got %v", err)
	}
	if len(bookings.deleted) != 0 {
		t.Fatal("user cancel attempt must not delete anything")
	}

	admin := utils.Identity{UserID: uuid.New(), Role: string(entity.RoleAdmin)}
	if err := svc.Cancel(context.Background(), admin, "1700000000000"); err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
	if len(bookings.deleted) != 1 || bookings.deleted[0] != "1700000000000" {
		t.Fatalf("expected booking 1700000000000 deleted, got %v", bookings.deleted)
	}
	// Cancellation removes the booking record only.
	if !seat.IsBooked {
		t.Error("cancelled booking must not release its seats")
	}
}

func TestListBookings_RoleDispatch(t *testing.T) {
	mine := &entity.Booking{ID: "1", UserID: uuid.New()}
	other := &entity.Booking{ID: "2", UserID: uuid.New()}
	bookings := &fakeBookingRepo{
		all:    []*entity.Booking{mine, other},
		byUser: []*entity.Booking{mine},
	}
	svc, _ := newTestReservation(&fakeSeatRepo{}, &fakeShowtimeRepo{}, bookings)

	admin := utils.Identity{UserID: uuid.New(), Role: string(entity.RoleAdmin)}
	got, err := svc.ListBookings(context.Background(), admin)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("admin sees %d bookings, want 2", len(got))
	}

	user := utils.Identity{UserID: mine.UserID, Role: string(entity.RoleUser)}
	got, err = svc.ListBookings(context.Background(), user)
	if err != nil {
		t.Fatalf("user list failed: %v", err)
	}
	if len(got) != 1 || got[0].BookingID != "1" {
		t.Errorf("user sees %v, want only own booking", got)
	}

	staff := utils.Identity{UserID: uuid.New(), Role: string(entity.RoleStaff)}
	if _, err := svc.ListBookings(context.Background(), staff); !errors.Is(err, ErrForbidden) {
		t.Errorf("staff list: expected ErrForbidden, got %v", err)
	}
}
