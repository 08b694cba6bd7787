package handlerauth

import (
	"context"
	"net/http"

	"github.com/avdeyev/authgate/internal/server/codec"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	mw "github.com/avdeyev/authgate/internal/server/handler/middleware"
	"github.com/avdeyev/authgate/internal/server/models"
	"go.uber.org/zap"
)

type SessionChecker interface {
	ValidateSession(ctx context.Context, token string) (*models.User, error)
}

// HandleCheck отвечает на вопрос «вошёл ли я».
// Endpoint: GET /api/auth/check
// Всегда HTTP 200: и для анонима, и для протухшего токена, и для
// сессии на удалённого пользователя — просто authenticated: false.
func HandleCheck(cfg *config.Config, l *zap.Logger, checker SessionChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond := func(resp models.CheckResponse) {
			if err := codec.Encode(w, http.StatusOK, resp); err != nil {
				l.Error("encoding response", zap.Error(err))
				http.Error(w, "Internal error", http.StatusInternalServerError)
			}
		}

		token := mw.TokenFromRequest(cfg, r)
		if token == "" {
			respond(models.CheckResponse{Authenticated: false})
			return
		}

		user, err := checker.ValidateSession(r.Context(), token)
		if err != nil {
			l.Debug("session check failed", zap.Error(err))
			respond(models.CheckResponse{Authenticated: false})
			return
		}

		public := user.Public()
		respond(models.CheckResponse{
			Authenticated: true,
			User:          &public,
		})
	}
}
