package handlerauth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/handler/api/auth/mocks"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleCheck(t *testing.T) {
	cfg := &config.Config{
		AuthConfig: config.AuthConfig{
			AuthCookieName: config.DefaultAuthCookieName,
			SessionTTL:     config.DefaultSessionTTL,
		},
	}

	logger := zap.NewNop()

	tests := []struct {
		name              string
		cookieToken       string
		headerToken       string
		mockSetup         func(*mocks.MockSessionChecker)
		wantAuthenticated bool
		wantUsername      string
	}{
		{
			name:        "valid session via cookie",
			cookieToken: "good-token",
			mockSetup: func(m *mocks.MockSessionChecker) {
				m.EXPECT().
					ValidateSession(mock.Anything, "good-token").
					Return(&models.User{ID: 7, Username: "testuser", Email: "test@example.com"}, nil).
					Once()
			},
			wantAuthenticated: true,
			wantUsername:      "testuser",
		},
		{
			name:        "valid session via api token header",
			headerToken: "good-token",
			mockSetup: func(m *mocks.MockSessionChecker) {
				m.EXPECT().
					ValidateSession(mock.Anything, "good-token").
					Return(&models.User{ID: 7, Username: "testuser", Email: "test@example.com"}, nil).
					Once()
			},
			wantAuthenticated: true,
			wantUsername:      "testuser",
		},
		{
			name:              "no token at all",
			mockSetup:         func(m *mocks.MockSessionChecker) {},
			wantAuthenticated: false,
		},
		{
			name:        "expired or unknown session",
			cookieToken: "stale-token",
			mockSetup: func(m *mocks.MockSessionChecker) {
				m.EXPECT().
					ValidateSession(mock.Anything, "stale-token").
					Return(nil, myerrors.ErrSessionNotFound).
					Once()
			},
			wantAuthenticated: false,
		},
		{
			name:        "session points at deleted user",
			cookieToken: "orphan-token",
			mockSetup: func(m *mocks.MockSessionChecker) {
				m.EXPECT().
					ValidateSession(mock.Anything, "orphan-token").
					Return(nil, myerrors.ErrUserNotFound).
					Once()
			},
			wantAuthenticated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChecker := mocks.NewMockSessionChecker(t)
			tt.mockSetup(mockChecker)

			handler := HandleCheck(cfg, logger, mockChecker)

			req := httptest.NewRequest("GET", "/api/auth/check", nil)
			if tt.cookieToken != "" {
				req.AddCookie(&http.Cookie{Name: cfg.AuthCookieName, Value: tt.cookieToken})
			}
			if tt.headerToken != "" {
				req.Header.Set("X-API-Token", tt.headerToken)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			// всегда 200, независимо от исхода
			assert.Equal(t, http.StatusOK, rr.Code)

			var resp models.CheckResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			assert.Equal(t, tt.wantAuthenticated, resp.Authenticated)
			if tt.wantAuthenticated {
				require.NotNil(t, resp.User)
				assert.Equal(t, tt.wantUsername, resp.User.Username)
			} else {
				assert.Nil(t, resp.User)
			}
		})
	}
}
