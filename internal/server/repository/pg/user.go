package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/models"
	"gorm.io/gorm"
)

type PgUser struct {
	conn *gorm.DB
}

func NewPgUser(db *gorm.DB) *PgUser {
	return &PgUser{conn: db}
}

func (r *PgUser) Create(ctx context.Context, user *models.User) error {
	err := r.conn.WithContext(ctx).
		Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create user in repo: %w", myerrors.ErrEmailTaken)
		}
		return fmt.Errorf("create user in repo: %w", err)
	}
	return nil
}

func (r *PgUser) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.conn.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user by email in repo: %w", myerrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("find user by email in repo: %w", err)
	}
	return &user, nil
}

func (r *PgUser) FindByID(ctx context.Context, id models.UserID) (*models.User, error) {
	var user models.User
	err := r.conn.WithContext(ctx).
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user by id in repo: %w", myerrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("find user by id in repo: %w", err)
	}
	return &user, nil
}

func (r *PgUser) List(ctx context.Context, limit int) ([]models.UserListItem, error) {
	var users []models.UserListItem
	err := r.conn.WithContext(ctx).
		Model(&models.User{}).
		Select("id, username, email, image, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users in repo: %w", err)
	}
	return users, nil
}

func (r *PgUser) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.conn.WithContext(ctx).
		Model(&models.User{}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count users in repo: %w", err)
	}
	return count, nil
}
