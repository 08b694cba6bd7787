package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/avdeyev/authgate/internal/server/models"
	"gorm.io/gorm"
)

type PgLogin struct {
	conn *gorm.DB
}

func NewPgLogin(db *gorm.DB) *PgLogin {
	return &PgLogin{conn: db}
}

func (r *PgLogin) Append(ctx context.Context, event *models.LoginEvent) error {
	err := r.conn.WithContext(ctx).
		Create(event).Error
	if err != nil {
		return fmt.Errorf("append login event in repo: %w", err)
	}
	return nil
}

func (r *PgLogin) HistoryByUser(ctx context.Context, userID models.UserID, limit int) ([]models.LoginRecord, error) {
	var records []models.LoginRecord
	err := r.conn.WithContext(ctx).
		Model(&models.LoginEvent{}).
		Select("login_time, ip_address, user_agent").
		Where("user_id = ?", userID).
		Order("login_time DESC").
		Limit(limit).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("login history in repo: %w", err)
	}
	return records, nil
}

func (r *PgLogin) AllLogins(ctx context.Context, limit int) ([]models.GlobalLoginRecord, error) {
	rows := make([]struct {
		LoginTime time.Time
		IPAddress string
		UserAgent string
		Username  string
		Email     string
	}, 0, limit)

	err := r.conn.WithContext(ctx).
		Table("user_logins").
		Select("user_logins.login_time, user_logins.ip_address, user_logins.user_agent, users.username, users.email").
		Joins("JOIN users ON users.id = user_logins.user_id").
		Order("user_logins.login_time DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("all logins in repo: %w", err)
	}

	records := make([]models.GlobalLoginRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.GlobalLoginRecord{
			LoginTime: row.LoginTime,
			IPAddress: row.IPAddress,
			UserAgent: row.UserAgent,
			User: models.LoginStatsUser{
				Username: row.Username,
				Email:    row.Email,
			},
		})
	}
	return records, nil
}

// StatsByUser считает входы по каждому пользователю. LEFT JOIN оставляет
// в выборке и тех, кто ни разу не входил: count = 0, last_login = NULL.
func (r *PgLogin) StatsByUser(ctx context.Context) ([]models.LoginStat, error) {
	var stats []models.LoginStat
	err := r.conn.WithContext(ctx).
		Table("users").
		Select("users.username, users.email, COUNT(user_logins.id) AS login_count, MAX(user_logins.login_time) AS last_login").
		Joins("LEFT JOIN user_logins ON user_logins.user_id = users.id").
		Group("users.id").
		Order("login_count DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("login stats in repo: %w", err)
	}
	return stats, nil
}
