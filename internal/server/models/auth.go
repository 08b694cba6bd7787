package models

import (
	"github.com/avdeyev/authgate/internal/validator"
)

const MinPasswordLength = 6

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

func (r RegisterRequest) Valid() validator.Problems {
	problems := make(validator.Problems)

	if r.Username == "" {
		problems["username"] = "username is required"
	}

	if r.Email == "" {
		problems["email"] = "email is required"
	}

	if r.Password == "" {
		problems["password"] = "password is required"
	} else if len(r.Password) < MinPasswordLength {
		problems["password"] = "password must be at least 6 characters"
	}

	return problems
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Valid() validator.Problems {
	problems := make(validator.Problems)

	if r.Email == "" {
		problems["email"] = "email is required"
	}

	if r.Password == "" {
		problems["password"] = "password is required"
	}

	return problems
}

type AuthResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CheckResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          *PublicUser `json:"user,omitempty"`
}
