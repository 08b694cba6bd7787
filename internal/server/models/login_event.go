package models

import (
	"time"
)

// LoginEvent — запись журнала входов. Только добавление, записи
// никогда не изменяются и удаляются лишь каскадно вместе с пользователем.
type LoginEvent struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    UserID    `json:"-" gorm:"not null;index"`
	LoginTime time.Time `json:"login_time" gorm:"index;autoCreateTime"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (LoginEvent) TableName() string {
	return "user_logins"
}

// ClientInfo — атрибуты клиента, записываемые в журнал входов.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// LoginRecord — строка собственной истории входов пользователя.
type LoginRecord struct {
	LoginTime time.Time `json:"login_time"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
}

// GlobalLoginRecord — строка административного журнала всех входов.
type GlobalLoginRecord struct {
	LoginTime time.Time      `json:"login_time"`
	IPAddress string         `json:"ip_address"`
	UserAgent string         `json:"user_agent"`
	User      LoginStatsUser `json:"user"`
}

type LoginStatsUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginStat — агрегат по пользователю для /api/admin/login-stats.
// LastLogin равен null для пользователей без единого входа.
type LoginStat struct {
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	LoginCount int64      `json:"login_count"`
	LastLogin  *time.Time `json:"last_login"`
}
