package wire

import (
	"movie-reservation/internal/adaptor"
	"movie-reservation/pkg/middleware"
	"movie-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireVerify configures the staff ticket verification route. The staff role
// check lives in the service so non-staff callers get the specific message.
func wireVerify(
	r chi.Router,
	verifyHandler *adaptor.VerifyHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(config.JWT.Secret, log)

	r.With(auth).Post("/api/verify", verifyHandler.Verify)
}
