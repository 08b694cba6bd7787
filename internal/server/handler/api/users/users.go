package handlerusers

import (
	"context"
	"net/http"

	"github.com/avdeyev/authgate/internal/server/codec"
	"github.com/avdeyev/authgate/internal/server/models"
	"go.uber.org/zap"
)

type UserLister interface {
	ListUsers(ctx context.Context, limit int) ([]models.UserListItem, error)
}

// HandleIndex — список пользователей с публичными полями.
// Endpoint: GET /api/users?limit=N (N ≤ 100, по умолчанию 50)
func HandleIndex(l *zap.Logger, lister UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := lister.ListUsers(r.Context(), codec.QueryInt(r, "limit"))
		if err != nil {
			l.Error("list users via service", zap.Error(err))
			if encErr := codec.Encode(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Ошибка базы данных",
			}); encErr != nil {
				l.Error("encoding error response", zap.Error(encErr))
			}
			return
		}

		if users == nil {
			users = []models.UserListItem{}
		}

		if err = codec.Encode(w, http.StatusOK, users); err != nil {
			l.Error("encoding response", zap.Error(err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}
}
