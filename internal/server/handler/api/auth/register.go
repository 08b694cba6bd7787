package handlerauth

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/codec"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/models"
	utils "github.com/avdeyev/authgate/internal/server/utils/auth"
	"github.com/avdeyev/authgate/internal/validator"
	"go.uber.org/zap"
)

type UserRegisterer interface {
	Register(ctx context.Context, req models.RegisterRequest, client models.ClientInfo) (*models.User, string, error)
}

// HandleRegister handles the HTTP request for new user registration.
// Endpoint: POST /api/auth/register
// Request Body: JSON encoded models.RegisterRequest
//
//	{
//	  "username": "string, required",
//	  "email": "string, required, unique, stored lower-case",
//	  "password": "string, required, min 6 characters",
//	  "image": "string, optional avatar URL"
//	}
//
// Behavior:
//   - Validates request JSON structure and field constraints
//   - Normalizes email, strips dangerous characters from free-text fields
//   - Hashes password using bcrypt before storage
//   - Creates a session and appends the first login-ledger entry
//   - Sets an HTTP-only session cookie with the token
//
// Returns:
//   - HTTP 201 Created with JSON models.AuthResponse (public fields only)
//   - HTTP 400 Bad Request on JSON decode error, validation failure
//     or duplicate email
//   - HTTP 500 Internal Server Error on database or hashing failure
func HandleRegister(cfg *config.Config, l *zap.Logger, reg UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := codec.Decode[models.RegisterRequest](r)
		if err != nil {
			l.Debug("decode json request", zap.Error(err))
			respondError(l, w, http.StatusBadRequest, "Все поля обязательны для заполнения")
			return
		}

		problems, err := validator.IsValid(creds)
		if err != nil {
			l.Debug("check validity", zap.Error(err))
			msg := "Все поля обязательны для заполнения"
			if _, ok := problems["password"]; ok && creds.Password != "" {
				msg = "Пароль должен содержать минимум 6 символов"
			}
			respondError(l, w, http.StatusBadRequest, msg)
			return
		}

		user, token, err := reg.Register(r.Context(), creds, clientInfo(r))
		if err != nil {
			if errors.Is(err, myerrors.ErrEmailTaken) {
				respondError(l, w, http.StatusBadRequest, "Пользователь с таким email уже существует")
				return
			}

			l.Error("register user via service", zap.Error(err))
			respondError(l, w, http.StatusInternalServerError, "Ошибка при регистрации")
			return
		}

		utils.SetSessionCookie(cfg, w, token)

		if err = codec.Encode(w, http.StatusCreated, models.AuthResponse{
			Message: "Регистрация успешна",
			User:    user.Public(),
		}); err != nil {
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

// clientInfo собирает атрибуты клиента для журнала входов.
// RealIP middleware уже подменил RemoteAddr на реальный адрес.
func clientInfo(r *http.Request) models.ClientInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	userAgent := r.UserAgent()
	if userAgent == "" {
		userAgent = "Unknown"
	}

	return models.ClientInfo{
		IPAddress: ip,
		UserAgent: userAgent,
	}
}
