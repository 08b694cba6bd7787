package middleware

import (
	"context"
	"net/http"

	"github.com/avdeyev/authgate/internal/server/codec"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/models"
	utils "github.com/avdeyev/authgate/internal/server/utils/auth"
	"go.uber.org/zap"
)

type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*models.User, error)
}

// TokenFromRequest достаёт токен сессии из заголовка X-API-Token
// (им пользуется CLI-клиент) или из cookie.
func TokenFromRequest(cfg *config.Config, r *http.Request) string {
	if token := r.Header.Get("X-API-Token"); token != "" {
		return token
	}

	cookie, err := r.Cookie(cfg.AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func NewAuth(
	cfg *config.Config,
	logger *zap.Logger,
	auth SessionValidator,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(cfg, r)
			if token == "" {
				logger.Debug("no session token in request")
				respondUnauthorized(w)
				return
			}

			user, err := auth.ValidateSession(r.Context(), token)
			if err != nil {
				logger.Debug("invalid session token", zap.Error(err))
				respondUnauthorized(w)
				return
			}

			ctx := utils.WithUser(r.Context(), utils.CtxUser{
				ID:   user.ID,
				Role: user.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пускает дальше только аутентифицированного администратора.
// Вешается после NewAuth.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := utils.GetCtxUser(r.Context())
			if err != nil {
				logger.Debug("no user in context", zap.Error(err))
				respondUnauthorized(w)
				return
			}

			if user.Role != models.RoleAdmin {
				if err := codec.Encode(w, http.StatusForbidden, models.ErrorResponse{
					Error: "Доступ запрещен",
				}); err != nil {
					logger.Error("encoding response", zap.Error(err))
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondUnauthorized(w http.ResponseWriter) {
	//nolint:errcheck // нечего делать с ошибкой записи ответа
	_ = codec.Encode(w, http.StatusUnauthorized, models.ErrorResponse{
		Error: "Требуется авторизация",
	})
}
