package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/joho/godotenv"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Handlers       *config.Config
	LogLevel       string
	DatabaseDsn    string
	SessionBackend string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
}

func GetConfig(args []string) (*Config, error) {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	cfg := Config{
		Handlers: &config.Config{
			ServerAddr:    config.DefaultServerAddr,
			CompressLevel: config.DefaultCompressLevel,
			AuthConfig: config.AuthConfig{
				AuthCookieName: config.DefaultAuthCookieName,
				SessionTTL:     config.DefaultSessionTTL,
			},
		},
		DatabaseDsn:    "host=127.0.0.1 port=5432 dbname=authgate user=authgate password=authgate connect_timeout=10 sslmode=prefer",
		LogLevel:       "info",
		SessionBackend: SessionBackendMemory,
		RedisAddr:      "localhost:6379",
	}

	if serverAddr := os.Getenv("RUN_ADDRESS"); serverAddr != "" {
		cfg.Handlers.ServerAddr = serverAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	if databaseDsn := os.Getenv("DATABASE_URI"); databaseDsn != "" {
		cfg.DatabaseDsn = databaseDsn
	}

	if cookieName := os.Getenv("AUTH_COOKIE_NAME"); cookieName != "" {
		cfg.Handlers.AuthCookieName = cookieName
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return &Config{}, fmt.Errorf("parse SESSION_TTL: %w", err)
		}
		cfg.Handlers.SessionTTL = d
	}

	if backend := os.Getenv("SESSION_BACKEND"); backend != "" {
		cfg.SessionBackend = backend
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.RedisPassword = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		n, err := strconv.Atoi(redisDB)
		if err != nil {
			return &Config{}, fmt.Errorf("parse REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	fs := flag.NewFlagSet("authgate", flag.ContinueOnError)
	fs.StringVar(&cfg.Handlers.ServerAddr, "a", cfg.Handlers.ServerAddr, "address of HTTP server")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.DatabaseDsn, "d", cfg.DatabaseDsn, "connection string")
	fs.StringVar(&cfg.SessionBackend, "s", cfg.SessionBackend, "session backend: memory or redis")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address for the session backend")
	err := fs.Parse(args)
	if err != nil {
		return &Config{}, fmt.Errorf("parse arguments for flagset: %w", err)
	}

	if cfg.SessionBackend != SessionBackendMemory && cfg.SessionBackend != SessionBackendRedis {
		return &Config{}, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}

	return &cfg, nil
}
