package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/handler/middleware/mocks"
	"github.com/avdeyev/authgate/internal/server/models"
	utils "github.com/avdeyev/authgate/internal/server/utils/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		AuthConfig: config.AuthConfig{
			AuthCookieName: config.DefaultAuthCookieName,
			SessionTTL:     config.DefaultSessionTTL,
		},
	}
}

func TestTokenFromRequest(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name        string
		cookieToken string
		headerToken string
		want        string
	}{
		{
			name:        "cookie only",
			cookieToken: "cookie-token",
			want:        "cookie-token",
		},
		{
			name:        "header only",
			headerToken: "header-token",
			want:        "header-token",
		},
		{
			name:        "header wins over cookie",
			cookieToken: "cookie-token",
			headerToken: "header-token",
			want:        "header-token",
		},
		{
			name: "no token",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.cookieToken != "" {
				req.AddCookie(&http.Cookie{Name: cfg.AuthCookieName, Value: tt.cookieToken})
			}
			if tt.headerToken != "" {
				req.Header.Set("X-API-Token", tt.headerToken)
			}

			assert.Equal(t, tt.want, TokenFromRequest(cfg, req))
		})
	}
}

func TestNewAuth(t *testing.T) {
	cfg := testConfig()
	logger := zap.NewNop()

	tests := []struct {
		name           string
		cookieToken    string
		headerToken    string
		mockSetup      func(*mocks.MockSessionValidator)
		expectedStatus int
		expectNext     bool
		expectedUser   utils.CtxUser
	}{
		{
			name:        "valid cookie session",
			cookieToken: "good-token",
			mockSetup: func(m *mocks.MockSessionValidator) {
				m.EXPECT().
					ValidateSession(mock.Anything, "good-token").
					Return(&models.User{ID: 42, Role: models.RoleUser}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
			expectedUser:   utils.CtxUser{ID: 42, Role: models.RoleUser},
		},
		{
			name:        "valid api token header",
			headerToken: "good-token",
			mockSetup: func(m *mocks.MockSessionValidator) {
				m.EXPECT().
					ValidateSession(mock.Anything, "good-token").
					Return(&models.User{ID: 2, Role: models.RoleAdmin}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
			expectedUser:   utils.CtxUser{ID: 2, Role: models.RoleAdmin},
		},
		{
			name:           "missing token",
			mockSetup:      func(m *mocks.MockSessionValidator) {},
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name:        "expired session",
			cookieToken: "stale-token",
			mockSetup: func(m *mocks.MockSessionValidator) {
				m.EXPECT().
					ValidateSession(mock.Anything, "stale-token").
					Return(nil, myerrors.ErrSessionNotFound).
					Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockValidator := mocks.NewMockSessionValidator(t)
			tt.mockSetup(mockValidator)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				user, err := utils.GetCtxUser(r.Context())
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			})

			handler := NewAuth(cfg, logger, mockValidator)(next)

			req := httptest.NewRequest("GET", "/api/users", nil)
			if tt.cookieToken != "" {
				req.AddCookie(&http.Cookie{Name: cfg.AuthCookieName, Value: tt.cookieToken})
			}
			if tt.headerToken != "" {
				req.Header.Set("X-API-Token", tt.headerToken)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)

			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), "Требуется авторизация")
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name           string
		ctxUser        *utils.CtxUser
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "admin passes",
			ctxUser:        &utils.CtxUser{ID: 2, Role: models.RoleAdmin},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "regular user forbidden",
			ctxUser:        &utils.CtxUser{ID: 42, Role: models.RoleUser},
			expectedStatus: http.StatusForbidden,
			expectNext:     false,
		},
		{
			name:           "no user in context",
			ctxUser:        nil,
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			handler := RequireAdmin(logger)(next)

			req := httptest.NewRequest("GET", "/api/admin/login-stats", nil)
			if tt.ctxUser != nil {
				req = req.WithContext(utils.WithUser(req.Context(), *tt.ctxUser))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)

			if tt.expectedStatus == http.StatusForbidden {
				assert.Contains(t, rr.Body.String(), "Доступ запрещен")
			}
		})
	}
}
