package handlerauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/handler/api/auth/mocks"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type handleRegisterTestCase struct {
	name           string
	requestBody    string
	mockSetup      func(*mocks.MockUserRegisterer)
	expectedStatus int
	expectCookie   bool
	cookieValue    string
	expectedError  string
}

func TestHandleRegister(t *testing.T) {
	cfg := &config.Config{
		AuthConfig: config.AuthConfig{
			AuthCookieName: config.DefaultAuthCookieName,
			SessionTTL:     config.DefaultSessionTTL,
		},
	}

	logger := zap.NewNop()

	tests := []handleRegisterTestCase{
		{
			name:        "successful registration",
			requestBody: `{"username": "testuser", "email": "test@example.com", "password": "password123"}`,
			mockSetup: func(m *mocks.MockUserRegisterer) {
				m.EXPECT().
					Register(mock.Anything, models.RegisterRequest{
						Username: "testuser",
						Email:    "test@example.com",
						Password: "password123",
					}, mock.Anything).
					Return(&models.User{ID: 1, Username: "testuser", Email: "test@example.com"}, "test-token", nil).
					Once()
			},
			expectedStatus: http.StatusCreated,
			expectCookie:   true,
			cookieValue:    "test-token",
		},
		{
			name:        "email already taken",
			requestBody: `{"username": "testuser", "email": "taken@example.com", "password": "password123"}`,
			mockSetup: func(m *mocks.MockUserRegisterer) {
				m.EXPECT().
					Register(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, "", myerrors.ErrEmailTaken).
					Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectCookie:   false,
			expectedError:  "Пользователь с таким email уже существует",
		},
		{
			name:        "internal server error",
			requestBody: `{"username": "testuser", "email": "test@example.com", "password": "password123"}`,
			mockSetup: func(m *mocks.MockUserRegisterer) {
				m.EXPECT().
					Register(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, "", assert.AnError).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectCookie:   false,
			expectedError:  "Ошибка при регистрации",
		},
		{
			name:           "invalid JSON",
			requestBody:    `{"username": "testuser", "email": }`,
			mockSetup:      func(m *mocks.MockUserRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectCookie:   false,
			expectedError:  "Все поля обязательны для заполнения",
		},
		{
			name:           "empty username",
			requestBody:    `{"username": "", "email": "test@example.com", "password": "password123"}`,
			mockSetup:      func(m *mocks.MockUserRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectCookie:   false,
			expectedError:  "Все поля обязательны для заполнения",
		},
		{
			name:           "missing email field",
			requestBody:    `{"username": "testuser", "password": "password123"}`,
			mockSetup:      func(m *mocks.MockUserRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectCookie:   false,
			expectedError:  "Все поля обязательны для заполнения",
		},
		{
			name:           "empty password",
			requestBody:    `{"username": "testuser", "email": "test@example.com", "password": ""}`,
			mockSetup:      func(m *mocks.MockUserRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectCookie:   false,
			expectedError:  "Все поля обязательны для заполнения",
		},
		{
			name:           "password shorter than six characters",
			requestBody:    `{"username": "testuser", "email": "test@example.com", "password": "12345"}`,
			mockSetup:      func(m *mocks.MockUserRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectCookie:   false,
			expectedError:  "Пароль должен содержать минимум 6 символов",
		},
		{
			name:        "context cancellation error",
			requestBody: `{"username": "testuser", "email": "test@example.com", "password": "password123"}`,
			mockSetup: func(m *mocks.MockUserRegisterer) {
				m.EXPECT().
					Register(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, "", context.Canceled).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectCookie:   false,
		},
	}

	//nolint:dupl // test structure possible the same for login and register
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRegisterer := mocks.NewMockUserRegisterer(t)
			tt.mockSetup(mockRegisterer)

			handler := HandleRegister(cfg, logger, mockRegisterer)

			// Execute
			req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			// Assert
			assertTestHandleRegister(t, &tt, rr, cfg)
		})
	}
}

func assertTestHandleRegister(
	t *testing.T,
	tt *handleRegisterTestCase,
	rr *httptest.ResponseRecorder,
	cfg *config.Config,
) {
	assert.Equal(t, tt.expectedStatus, rr.Code)

	resp := rr.Result()
	defer resp.Body.Close()

	if tt.expectedError != "" {
		assert.Contains(t, rr.Body.String(), tt.expectedError)
	}

	authCookieFound := false
	for _, cookie := range resp.Cookies() {
		if cookie.Name == cfg.AuthCookieName {
			authCookieFound = true
			if tt.expectCookie {
				assert.Equal(t, tt.cookieValue, cookie.Value)
				assert.True(t, cookie.HttpOnly)
			}
			break
		}
	}
	assert.Equal(t, tt.expectCookie, authCookieFound)
}
