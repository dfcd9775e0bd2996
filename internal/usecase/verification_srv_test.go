package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeVerifyBookingRepo struct {
	repository.BookingRepository
	byHash map[string]*entity.Booking
}

func (f *fakeVerifyBookingRepo) FindByHash(ctx context.Context, hash string) (*entity.Booking, error) {
	return f.byHash[hash], nil
}

func newTestVerification(byHash map[string]*entity.Booking) VerificationService {
	repo := &repository.Repository{Booking: &fakeVerifyBookingRepo{byHash: byHash}}
	return NewVerificationService(repo, zap.NewNop())
}

func staffIdentity() utils.Identity {
	return utils.Identity{UserID: uuid.New(), Role: string(entity.RoleStaff)}
}

func TestVerify_KnownHash(t *testing.T) {
	booking := &entity.Booking{
		ID:     "1700000000000",
		UserID: uuid.New(),
		Hash:   "a3f2c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8091",
		Amount: 150,
	}
	svc := newTestVerification(map[string]*entity.Booking{booking.Hash: booking})

	result, err := svc.Verify(context.Background(), staffIdentity(), &request.VerifyRequest{Hash: booking.Hash})
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !result.Valid {
		t.Error("expected valid=true for a known hash")
	}
	if result.Booking.BookingID != booking.ID {
		t.Errorf("returned booking %s, want %s", result.Booking.BookingID, booking.ID)
	}
	if result.Booking.Amount != 150 {
		t.Errorf("returned amount %v, want 150", result.Booking.Amount)
	}
}

func TestVerify_UnknownHash(t *testing.T) {
	svc := newTestVerification(map[string]*entity.Booking{})

	_, err := svc.Verify(context.Background(), staffIdentity(), &request.VerifyRequest{Hash: "deadbeef"})
	if !errors.Is(err, repository.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestVerify_StaffOnly(t *testing.T) {
	svc := newTestVerification(map[string]*entity.Booking{})

	for _, role := range []string{string(entity.RoleUser), string(entity.RoleAdmin)} {
		identity := utils.Identity{UserID: uuid.New(), Role: role}
		_, err := svc.Verify(context.Background(), identity, &request.VerifyRequest{Hash: "deadbeef"})
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}
