package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/avdeyev/authgate/internal/client/config"
	"github.com/avdeyev/authgate/internal/client/models"
)

// Auth выполняет запросы к серверу и ведёт токен сессии.
type Auth struct {
	cfg    *config.Config
	client *http.Client
	tokens TokenStore
}

func NewAuth(cfg *config.Config, client *http.Client, tokens TokenStore) *Auth {
	return &Auth{
		cfg:    cfg,
		client: client,
		tokens: tokens,
	}
}

func (a *Auth) Register(ctx context.Context, request models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	httpResp, err := a.doJSON(ctx, http.MethodPost, "/api/auth/register", request, &resp)
	if err != nil {
		return nil, err
	}

	if err := a.saveSessionToken(httpResp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *Auth) Login(ctx context.Context, request models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	httpResp, err := a.doJSON(ctx, http.MethodPost, "/api/auth/login", request, &resp)
	if err != nil {
		return nil, err
	}

	if err := a.saveSessionToken(httpResp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *Auth) Logout(ctx context.Context) error {
	if _, err := a.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	return nil
}

func (a *Auth) Check(ctx context.Context) (*models.CheckResponse, error) {
	var resp models.CheckResponse
	if _, err := a.doJSON(ctx, http.MethodGet, "/api/auth/check", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *Auth) History(ctx context.Context, limit int) ([]models.LoginRecord, error) {
	path := "/api/auth/login-history"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var records []models.LoginRecord
	if _, err := a.doJSON(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// doJSON отправляет запрос с токеном из keyring и разбирает JSON-ответ.
// Ошибочные статусы превращаются в ошибку с текстом сервера.
func (a *Auth) doJSON(ctx context.Context, method, path string, body, out any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("сериализация запроса: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.cfg.Server.Address+path, reader)
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := a.tokens.Load()
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("X-API-Token", token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос %s %s: %w", method, path, err)
	}
	defer func() {
		//nolint:errcheck // тело уже прочитано
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("чтение ответа: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp models.ErrorResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error != "" {
			return nil, fmt.Errorf("сервер ответил %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("сервер ответил %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("разбор ответа: %w", err)
		}
	}

	return resp, nil
}

func (a *Auth) saveSessionToken(resp *http.Response) error {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == a.cfg.Server.Cookie && cookie.Value != "" {
			return a.tokens.Save(cookie.Value)
		}
	}
	return nil
}
