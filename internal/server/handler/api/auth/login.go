package handlerauth

import (
	"context"
	"errors"
	"net/http"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/codec"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/models"
	utils "github.com/avdeyev/authgate/internal/server/utils/auth"
	"github.com/avdeyev/authgate/internal/validator"
	"go.uber.org/zap"
)

type UserLoginer interface {
	Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (*models.User, string, error)
}

// HandleLogin handles the HTTP request for user authentication.
// Endpoint: POST /api/auth/login
// Request Body: JSON encoded models.LoginRequest {email, password}.
//
// Behavior:
//   - Validates request JSON structure and required fields
//   - Authenticates credentials; unknown email and wrong password
//     are indistinguishable in the response
//   - Creates a session and appends a login-ledger entry
//   - Sets an HTTP-only session cookie with the token
//
// Returns:
//   - HTTP 200 OK with JSON models.AuthResponse
//   - HTTP 400 Bad Request on JSON decode error or missing fields
//   - HTTP 401 Unauthorized on invalid email/password combination
//   - HTTP 500 Internal Server Error on database failure
func HandleLogin(cfg *config.Config, l *zap.Logger, auth UserLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := codec.Decode[models.LoginRequest](r)
		if err != nil {
			l.Debug("decode json request", zap.Error(err))
			respondError(l, w, http.StatusBadRequest, "Email и пароль обязательны")
			return
		}

		_, err = validator.IsValid(creds)
		if err != nil {
			l.Debug("check validity", zap.Error(err))
			respondError(l, w, http.StatusBadRequest, "Email и пароль обязательны")
			return
		}

		user, token, err := auth.Login(r.Context(), creds, clientInfo(r))
		if err != nil {
			if errors.Is(err, myerrors.ErrInvalidCredentials) {
				respondError(l, w, http.StatusUnauthorized, "Неверный email или пароль")
				return
			}

			l.Error("login user via service", zap.Error(err))
			respondError(l, w, http.StatusInternalServerError, "Ошибка сервера")
			return
		}

		utils.SetSessionCookie(cfg, w, token)

		if err = codec.Encode(w, http.StatusOK, models.AuthResponse{
			Message: "Вход выполнен успешно",
			User:    user.Public(),
		}); err != nil {
			l.Error("encoding response", zap.Error(err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}
}
