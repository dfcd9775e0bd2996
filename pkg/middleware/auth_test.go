package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestAuthJWT(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()
	token, err := utils.NewAccessToken(secret, userID, "user", 1)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}

	var gotIdentity utils.Identity
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotIdentity, _ = utils.GetIdentityFromContext(r.Context())
	})
	handler := AuthJWT(secret, zap.NewNop())(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, false},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantNext {
				t.Errorf("next called = %v, want %v", called, tt.wantNext)
			}
		})
	}

	if gotIdentity.UserID != userID || gotIdentity.Role != "user" {
		t.Errorf("context identity = %+v, want user %s role user", gotIdentity, userID)
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole(zap.NewNop(), "admin")(next)

	tests := []struct {
		name       string
		role       string
		withCtx    bool
		wantStatus int
	}{
		{"allowed role", "admin", true, http.StatusOK},
		{"denied role", "user", true, http.StatusForbidden},
		{"no identity in context", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
			if tt.withCtx {
				ctx := utils.SetUserContext(req.Context(), uuid.New(), tt.role)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
