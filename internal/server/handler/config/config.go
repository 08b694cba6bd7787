package config

import "time"

const (
	DefaultServerAddr     = "localhost:8080"
	DefaultCompressLevel  = 5
	DefaultAuthCookieName = "authgate_session"
	DefaultSessionTTL     = 24 * time.Hour
)

type Config struct {
	ServerAddr    string
	CompressLevel int
	AuthConfig
}

type AuthConfig struct {
	AuthCookieName string        `env:"AUTH_COOKIE_NAME"`
	SessionTTL     time.Duration `env:"SESSION_TTL"`
}
