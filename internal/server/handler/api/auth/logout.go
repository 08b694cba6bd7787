package handlerauth

import (
	"context"
	"net/http"

	"github.com/avdeyev/authgate/internal/server/codec"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	mw "github.com/avdeyev/authgate/internal/server/handler/middleware"
	"github.com/avdeyev/authgate/internal/server/models"
	utils "github.com/avdeyev/authgate/internal/server/utils/auth"
	"go.uber.org/zap"
)

type SessionEnder interface {
	Logout(ctx context.Context, token string) error
}

// HandleLogout гасит текущую сессию и чистит cookie.
// Endpoint: POST /api/auth/logout
// Выход без живой сессии — не ошибка, ответ тот же 200.
func HandleLogout(cfg *config.Config, l *zap.Logger, ender SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := mw.TokenFromRequest(cfg, r)

		if err := ender.Logout(r.Context(), token); err != nil {
			l.Error("logout via service", zap.Error(err))
			respondError(l, w, http.StatusInternalServerError, "Ошибка при выходе")
			return
		}

		utils.ClearSessionCookie(cfg, w)

		if err := codec.Encode(w, http.StatusOK, models.MessageResponse{
			Message: "Выход выполнен успешно",
		}); err != nil {
			l.Error("encoding response", zap.Error(err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}
}
