package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeReservationService struct {
	usecase.ReservationService
	ticket *response.TicketEnvelope
	err    error
}

func (f *fakeReservationService) Reserve(ctx context.Context, identity utils.Identity, req *request.ReserveRequest) (*response.TicketEnvelope, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ticket, nil
}

func reserveRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader(payload))
	ctx := utils.SetUserContext(req.Context(), uuid.New(), "user")
	return req.WithContext(ctx)
}

func TestReserveHandler_Success(t *testing.T) {
	svc := &fakeReservationService{ticket: &response.TicketEnvelope{
		Ticket: response.TicketResponse{
			BookingID:   "1700000000000",
			UserName:    "alice",
			MovieName:   "Inception",
			ShowDate:    "2026-09-01",
			ShowTime:    "19:30",
			Seats:       []string{"A1", "A2"},
			TotalAmount: 300,
			Hash:        "abc123",
		},
	}}
	h := NewReservationHandler(svc, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Reserve(rec, reserveRequest(t, request.ReserveRequest{
		ShowtimeID: uuid.NewString(),
		SeatIDs:    []string{uuid.NewString(), uuid.NewString()},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var got response.TicketEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Ticket.BookingID != "1700000000000" || got.Ticket.TotalAmount != 300 {
		t.Errorf("unexpected ticket: %+v", got.Ticket)
	}
}

func TestReserveHandler_SeatConflictPayload(t *testing.T) {
	taken := uuid.NewString()
	svc := &fakeReservationService{err: &usecase.SeatsUnavailableError{SeatIDs: []string{taken}}}
	h := NewReservationHandler(svc, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Reserve(rec, reserveRequest(t, request.ReserveRequest{
		ShowtimeID: uuid.NewString(),
		SeatIDs:    []string{taken},
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Error       string   `json:"error"`
		BookedSeats []string `json:"bookedSeats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Some seats are already booked" {
		t.Errorf("error = %q, want conflict message", body.Error)
	}
	if len(body.BookedSeats) != 1 || body.BookedSeats[0] != taken {
		t.Errorf("bookedSeats = %v, want [%s]", body.BookedSeats, taken)
	}
}

func TestReserveHandler_InvalidBody(t *testing.T) {
	h := NewReservationHandler(&fakeReservationService{}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader([]byte("{not json")))
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "user"))
	rec := httptest.NewRecorder()

	h.Reserve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReserveHandler_MissingIdentity(t *testing.T) {
	h := NewReservationHandler(&fakeReservationService{}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader([]byte("{}")))
	rec := httptest.NewRecorder()

	h.Reserve(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
