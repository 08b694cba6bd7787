package models

import (
	"time"
)

type UserID uint

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const DefaultImage = "https://via.placeholder.com/150"

type User struct {
	ID           UserID    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Image        string    `json:"image"`
	Role         string    `json:"-" gorm:"not null;default:user"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser — поля пользователя, отдаваемые наружу.
// Хеш пароля наружу не выходит никогда.
type PublicUser struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Image:    u.Image,
	}
}

// UserListItem — строка списка /api/users.
type UserListItem struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
