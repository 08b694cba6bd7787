package handlerauth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdeyev/authgate/internal/server/handler/api/auth/mocks"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestHandleLogout(t *testing.T) {
	cfg := &config.Config{
		AuthConfig: config.AuthConfig{
			AuthCookieName: config.DefaultAuthCookieName,
			SessionTTL:     config.DefaultSessionTTL,
		},
	}

	logger := zap.NewNop()

	tests := []struct {
		name           string
		cookieToken    string
		headerToken    string
		mockSetup      func(*mocks.MockSessionEnder)
		expectedStatus int
	}{
		{
			name:        "logout with session cookie",
			cookieToken: "live-token",
			mockSetup: func(m *mocks.MockSessionEnder) {
				m.EXPECT().
					Logout(mock.Anything, "live-token").
					Return(nil).
					Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "logout with api token header",
			headerToken: "header-token",
			mockSetup: func(m *mocks.MockSessionEnder) {
				m.EXPECT().
					Logout(mock.Anything, "header-token").
					Return(nil).
					Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "logout without session is still ok",
			mockSetup: func(m *mocks.MockSessionEnder) {
				m.EXPECT().
					Logout(mock.Anything, "").
					Return(nil).
					Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "store failure",
			cookieToken: "live-token",
			mockSetup: func(m *mocks.MockSessionEnder) {
				m.EXPECT().
					Logout(mock.Anything, "live-token").
					Return(assert.AnError).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEnder := mocks.NewMockSessionEnder(t)
			tt.mockSetup(mockEnder)

			handler := HandleLogout(cfg, logger, mockEnder)

			req := httptest.NewRequest("POST", "/api/auth/logout", nil)
			if tt.cookieToken != "" {
				req.AddCookie(&http.Cookie{Name: cfg.AuthCookieName, Value: tt.cookieToken})
			}
			if tt.headerToken != "" {
				req.Header.Set("X-API-Token", tt.headerToken)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, rr.Body.String(), "Выход выполнен успешно")

				resp := rr.Result()
				defer resp.Body.Close()

				// cookie должен быть погашен
				cleared := false
				for _, cookie := range resp.Cookies() {
					if cookie.Name == cfg.AuthCookieName {
						cleared = cookie.Value == "" && cookie.MaxAge < 0
					}
				}
				assert.True(t, cleared)
			}
		})
	}
}
