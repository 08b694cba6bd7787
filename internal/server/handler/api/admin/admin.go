package handleradmin

import (
	"context"
	"net/http"

	"github.com/avdeyev/authgate/internal/server/codec"
	"github.com/avdeyev/authgate/internal/server/models"
	"go.uber.org/zap"
)

type StatsProvider interface {
	LoginStats(ctx context.Context) ([]models.LoginStat, error)
}

type GlobalLoginProvider interface {
	AllLogins(ctx context.Context, limit int) ([]models.GlobalLoginRecord, error)
}

// HandleLoginStats — агрегат входов по каждому пользователю.
// Endpoint: GET /api/admin/login-stats (только для роли admin,
// проверяется middleware.RequireAdmin).
// Пользователи без входов присутствуют с login_count 0 и last_login null.
func HandleLoginStats(l *zap.Logger, rep StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := rep.LoginStats(r.Context())
		if err != nil {
			l.Error("login stats via service", zap.Error(err))
			respondError(l, w, http.StatusInternalServerError, "Ошибка сервера")
			return
		}

		if stats == nil {
			stats = []models.LoginStat{}
		}

		if err = codec.Encode(w, http.StatusOK, stats); err != nil {
			l.Error("encoding response", zap.Error(err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}
}

// HandleAllLogins — глобальный журнал входов с данными пользователя.
// Endpoint: GET /api/admin/all-logins?limit=N (N ≤ 500, по умолчанию 100)
func HandleAllLogins(l *zap.Logger, rep GlobalLoginProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := rep.AllLogins(r.Context(), codec.QueryInt(r, "limit"))
		if err != nil {
			l.Error("all logins via service", zap.Error(err))
			respondError(l, w, http.StatusInternalServerError, "Ошибка сервера")
			return
		}

		if records == nil {
			records = []models.GlobalLoginRecord{}
		}

		if err = codec.Encode(w, http.StatusOK, records); err != nil {
			l.Error("encoding response", zap.Error(err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}
}

func respondError(l *zap.Logger, w http.ResponseWriter, status int, msg string) {
	if err := codec.Encode(w, status, models.ErrorResponse{Error: msg}); err != nil {
		l.Error("encoding error response", zap.Error(err))
	}
}
