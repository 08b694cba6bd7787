package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValid(t *testing.T) {
	tests := []struct {
		name         string
		req          RegisterRequest
		wantProblems []string
	}{
		{
			name: "valid request",
			req: RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			},
			wantProblems: nil,
		},
		{
			name: "image is optional",
			req: RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
				Image:    "",
			},
			wantProblems: nil,
		},
		{
			name: "missing username",
			req: RegisterRequest{
				Email:    "test@example.com",
				Password: "password123",
			},
			wantProblems: []string{"username"},
		},
		{
			name: "missing email",
			req: RegisterRequest{
				Username: "testuser",
				Password: "password123",
			},
			wantProblems: []string{"email"},
		},
		{
			name: "missing password",
			req: RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
			},
			wantProblems: []string{"password"},
		},
		{
			name: "short password",
			req: RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "12345",
			},
			wantProblems: []string{"password"},
		},
		{
			name: "password of exactly six characters",
			req: RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "123456",
			},
			wantProblems: nil,
		},
		{
			name:         "everything missing",
			req:          RegisterRequest{},
			wantProblems: []string{"username", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.req.Valid()

			assert.Len(t, problems, len(tt.wantProblems))
			for _, field := range tt.wantProblems {
				assert.Contains(t, problems, field)
			}
		})
	}
}

func TestLoginRequestValid(t *testing.T) {
	tests := []struct {
		name         string
		req          LoginRequest
		wantProblems []string
	}{
		{
			name:         "valid request",
			req:          LoginRequest{Email: "test@example.com", Password: "password123"},
			wantProblems: nil,
		},
		{
			name:         "missing email",
			req:          LoginRequest{Password: "password123"},
			wantProblems: []string{"email"},
		},
		{
			name:         "missing password",
			req:          LoginRequest{Email: "test@example.com"},
			wantProblems: []string{"password"},
		},
		{
			// длина пароля на входе не проверяется, только при регистрации
			name:         "short password is fine for login",
			req:          LoginRequest{Email: "test@example.com", Password: "123"},
			wantProblems: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.req.Valid()

			assert.Len(t, problems, len(tt.wantProblems))
			for _, field := range tt.wantProblems {
				assert.Contains(t, problems, field)
			}
		})
	}
}

func TestUserPublic(t *testing.T) {
	user := User{
		ID:           7,
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$secret",
		Image:        DefaultImage,
		Role:         RoleAdmin,
	}

	public := user.Public()

	assert.Equal(t, PublicUser{
		ID:       7,
		Username: "testuser",
		Email:    "test@example.com",
		Image:    DefaultImage,
	}, public)
}
