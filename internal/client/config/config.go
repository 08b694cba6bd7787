package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultRequestTimeout = 30 * time.Second
)

type (
	Server struct {
		Address string `mapstructure:"address"`
		Cookie  string `mapstructure:"cookie"`
	}
	Log struct {
		Level string `mapstructure:"level"`
	}
	Config struct {
		Server         Server `mapstructure:"server"`
		Log            Log    `mapstructure:"log"`
		RequestTimeout time.Duration
		App            string
	}
)

// BindFlags регистрирует флаги. Вызывайте это в NewRootCmd
func BindFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("address", "a", "http://localhost:8080", "Адрес сервера")
	cmd.Flags().StringP("level", "", "info", "Уровень логирования")
	cmd.Flags().StringP("cookie", "c", "authgate_session", "Имя cookie сессии")
}

// Load инициализирует Viper и собирает Config
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("AG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := v.BindPFlag("server.address", cmd.Flags().Lookup("address"))
	if err != nil {
		return nil, fmt.Errorf("привязка server.address: %v", err)
	}
	err = v.BindPFlag("log.level", cmd.Flags().Lookup("level"))
	if err != nil {
		return nil, fmt.Errorf("привязка log.level: %v", err)
	}
	err = v.BindPFlag("server.cookie", cmd.Flags().Lookup("cookie"))
	if err != nil {
		return nil, fmt.Errorf("привязка server.cookie: %v", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs/client")

	if err = v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("чтение конфига: %w", err)
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("десериализация: %w", err)
	}

	cfg.RequestTimeout = DefaultRequestTimeout
	cfg.App = "AuthGate"

	return &cfg, nil
}
