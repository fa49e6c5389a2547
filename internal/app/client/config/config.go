package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "http://localhost:3000"
	defaultEnv           = "prod"
	defaultTimeout       = 15 * time.Second
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	ServerAddress string        `mapstructure:"server_address"`
	Timeout       time.Duration `mapstructure:"request_timeout"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Lỗi cấu hình: %v", err))
	}
	return cfg
}

// Load читает .env (если есть), затем переменные окружения и конфиг, уже
// подключённый к глобальному viper.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("REQUEST_TIMEOUT", defaultTimeout)

	cfg := &Config{
		Env:           viper.GetString("APP_ENV"),
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		Timeout:       viper.GetDuration("REQUEST_TIMEOUT"),
	}
	cfg.ServerAddress = NormalizeAddress(cfg.ServerAddress)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NormalizeAddress adds the http scheme to bare host:port values and drops a trailing slash.
func NormalizeAddress(addr string) string {
	addr = strings.TrimRight(strings.TrimSpace(addr), "/")
	if addr != "" && !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return addr
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	u, err := url.Parse(c.ServerAddress)
	if err != nil || u.Host == "" {
		return fmt.Errorf("server_address %q is not a valid URL", c.ServerAddress)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	return nil
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local"
}
