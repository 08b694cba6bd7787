package handlerauth

import (
	"context"
	"net/http"

	"github.com/avdeyev/authgate/internal/server/codec"
	"github.com/avdeyev/authgate/internal/server/models"
	utils "github.com/avdeyev/authgate/internal/server/utils/auth"
	"go.uber.org/zap"
)

type HistoryProvider interface {
	LoginHistory(ctx context.Context, userID models.UserID, limit int) ([]models.LoginRecord, error)
}

// HandleHistory — собственная история входов вызывающего.
// Endpoint: GET /api/auth/login-history?limit=N (N ≤ 100, по умолчанию 50)
// Выборка всегда ограничена user_id из сессии, чужие входы не видны.
func HandleHistory(l *zap.Logger, hp HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := utils.GetCtxUser(r.Context())
		if err != nil {
			l.Error("user not in context", zap.Error(err))
			respondError(l, w, http.StatusUnauthorized, "Требуется авторизация")
			return
		}

		records, err := hp.LoginHistory(r.Context(), user.ID, codec.QueryInt(r, "limit"))
		if err != nil {
			l.Error("login history via service", zap.Error(err))
			respondError(l, w, http.StatusInternalServerError, "Ошибка сервера")
			return
		}

		if records == nil {
			records = []models.LoginRecord{}
		}

		if err = codec.Encode(w, http.StatusOK, records); err != nil {
			l.Error("encoding response", zap.Error(err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}
}
