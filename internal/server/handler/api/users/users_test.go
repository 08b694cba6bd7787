package handlerusers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avdeyev/authgate/internal/server/handler/api/users/mocks"
	"github.com/avdeyev/authgate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleIndex(t *testing.T) {
	logger := zap.NewNop()

	createdAt := time.Date(2025, 5, 12, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		target         string
		mockSetup      func(*mocks.MockUserLister)
		expectedStatus int
		expectedLen    int
		expectedError  string
	}{
		{
			name:   "list users",
			target: "/api/users",
			mockSetup: func(m *mocks.MockUserLister) {
				m.EXPECT().
					ListUsers(mock.Anything, 0).
					Return([]models.UserListItem{
						{ID: 1, Username: "testuser", Email: "test@example.com", CreatedAt: createdAt},
						{ID: 2, Username: "admin", Email: "admin@example.com", CreatedAt: createdAt},
					}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:   "limit passed through from query",
			target: "/api/users?limit=1",
			mockSetup: func(m *mocks.MockUserLister) {
				m.EXPECT().
					ListUsers(mock.Anything, 1).
					Return([]models.UserListItem{
						{ID: 1, Username: "testuser", Email: "test@example.com", CreatedAt: createdAt},
					}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:   "nil slice becomes empty array",
			target: "/api/users",
			mockSetup: func(m *mocks.MockUserLister) {
				m.EXPECT().
					ListUsers(mock.Anything, 0).
					Return(nil, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:   "database failure",
			target: "/api/users",
			mockSetup: func(m *mocks.MockUserLister) {
				m.EXPECT().
					ListUsers(mock.Anything, 0).
					Return(nil, assert.AnError).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Ошибка базы данных",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLister := mocks.NewMockUserLister(t)
			tt.mockSetup(mockLister)

			handler := HandleIndex(logger, mockLister)

			req := httptest.NewRequest("GET", tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedError != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedError)
				return
			}

			var users []models.UserListItem
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
			assert.Len(t, users, tt.expectedLen)
			assert.NotEqual(t, "null", rr.Body.String())
		})
	}
}
