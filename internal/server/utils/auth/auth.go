package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFoundInContext       = errors.New("user not found in context")
	ErrUnexpectedUserTypeInContext = errors.New("unexpected user type in context")
)

type userCtxKey struct{}

// CtxUser — данные аутентифицированного пользователя в контексте запроса.
type CtxUser struct {
	ID   models.UserID
	Role string
}

func WithUser(ctx context.Context, user CtxUser) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

func GetCtxUser(ctx context.Context) (CtxUser, error) {
	value := ctx.Value(userCtxKey{})
	if value == nil {
		return CtxUser{}, ErrUserNotFoundInContext
	}

	if user, ok := value.(CtxUser); ok {
		return user, nil
	}
	return CtxUser{}, fmt.Errorf("%w: %T", ErrUnexpectedUserTypeInContext, value)
}

func SetSessionCookie(cfg *config.Config, w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cfg.SessionTTL),
		HttpOnly: true,
	})
}

func ClearSessionCookie(cfg *config.Config, w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashedBytes), nil
}

func VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		return fmt.Errorf("compare hash and password: %w", err)
	}
	return nil
}
