package report

import (
	"context"
	"fmt"

	"github.com/avdeyev/authgate/internal/server/models"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
	DefaultUsersLimit   = 50
	MaxUsersLimit       = 100
	DefaultGlobalLimit  = 100
	MaxGlobalLimit      = 500
)

type LoginReader interface {
	HistoryByUser(ctx context.Context, userID models.UserID, limit int) ([]models.LoginRecord, error)
	AllLogins(ctx context.Context, limit int) ([]models.GlobalLoginRecord, error)
	StatsByUser(ctx context.Context) ([]models.LoginStat, error)
}

type UserLister interface {
	List(ctx context.Context, limit int) ([]models.UserListItem, error)
}

// Report отдаёт отчётные выборки по журналу входов.
// Права проверяет middleware, сервис лишь нормализует лимиты.
type Report struct {
	logins LoginReader
	users  UserLister
}

func NewReport(logins LoginReader, users UserLister) *Report {
	return &Report{
		logins: logins,
		users:  users,
	}
}

// LoginHistory — собственная история входов вызывающего.
func (s *Report) LoginHistory(ctx context.Context, userID models.UserID, limit int) ([]models.LoginRecord, error) {
	limit = clampLimit(limit, DefaultHistoryLimit, MaxHistoryLimit)

	records, err := s.logins.HistoryByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("login history: %w", err)
	}
	return records, nil
}

func (s *Report) ListUsers(ctx context.Context, limit int) ([]models.UserListItem, error) {
	limit = clampLimit(limit, DefaultUsersLimit, MaxUsersLimit)

	users, err := s.users.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// LoginStats — агрегат по всем пользователям, включая тех,
// кто ни разу не входил.
func (s *Report) LoginStats(ctx context.Context) ([]models.LoginStat, error) {
	stats, err := s.logins.StatsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("login stats: %w", err)
	}
	return stats, nil
}

func (s *Report) AllLogins(ctx context.Context, limit int) ([]models.GlobalLoginRecord, error) {
	limit = clampLimit(limit, DefaultGlobalLimit, MaxGlobalLimit)

	records, err := s.logins.AllLogins(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("all logins: %w", err)
	}
	return records, nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
