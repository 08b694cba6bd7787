package pg

import (
	"context"
	"fmt"

	"github.com/avdeyev/authgate/internal/server/models"
	utils "github.com/avdeyev/authgate/internal/server/utils/auth"
)

// EnsureSeedUsers добавляет тестовых пользователей в пустую базу.
// Второй из них — административная учётная запись.
func (r *PgUser) EnsureSeedUsers(ctx context.Context) error {
	count, err := r.Count(ctx)
	if err != nil {
		return fmt.Errorf("ensure seed users: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		username string
		email    string
		password string
		role     string
	}{
		{username: "test_user", email: "test@example.com", password: "password123", role: models.RoleUser},
		{username: "admin", email: "admin@example.com", password: "admin123", role: models.RoleAdmin},
	}

	for _, s := range seed {
		hash, err := utils.HashPassword(s.password)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		user := &models.User{
			Username:     s.username,
			Email:        s.email,
			PasswordHash: hash,
			Image:        models.DefaultImage,
			Role:         s.role,
		}
		if err := r.Create(ctx, user); err != nil {
			return fmt.Errorf("create seed user %s: %w", s.username, err)
		}
	}

	return nil
}
