package service

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/avdeyev/authgate/internal/client/config"
)

// Container — реестр всех сервисов приложения
type Container struct {
	Config *config.Config
	Auth   *Auth
}

type ctxKey struct{}

// NewContainer инициализирует все сервисы
func NewContainer(cfg *config.Config) (*Container, error) {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	client := &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: transport,
	}

	tokens := NewKeyringTokenStore(cfg.App)
	authSvc := NewAuth(cfg, client, tokens)

	return &Container{
		Config: cfg,
		Auth:   authSvc,
	}, nil
}

func FromContext(ctx context.Context) *Container {
	return ctx.Value(ctxKey{}).(*Container)
}

func SaveToContext(ctx context.Context, a *Container) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}
