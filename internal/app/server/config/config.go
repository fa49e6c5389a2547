package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Env     string
	Storage storage
	Server  server
	Logger  logger
}

type storage struct {
	Backend     string
	DataFile    string
	SQLitePath  string
	DatabaseURI string
}

type server struct {
	RunAddress      string
	StaticDir       string
	ShutdownTimeout time.Duration
}

type logger struct {
	LogLevel string
}

// MustLoad загружает конфигурацию сервера из .env и переменных окружения
func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("failed to load %s: %v", envPath, err)
		}
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// Load читает конфигурацию только из окружения.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", EnvLocal)
	v.SetDefault("STORAGE_BACKEND", BackendJSON)
	v.SetDefault("DATA_FILE", "db.json")
	v.SetDefault("SQLITE_PATH", "thuchi.db")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("SHUTDOWN_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")

	runAddress := v.GetString("RUN_ADDRESS")
	if runAddress == "" {
		// PORT как у исходного express-сервера
		port := v.GetString("PORT")
		if port == "" {
			port = "3000"
		}
		runAddress = ":" + port
	}

	cfg := &Config{
		Env: v.GetString("APP_ENV"),
		Storage: storage{
			Backend:     strings.ToLower(v.GetString("STORAGE_BACKEND")),
			DataFile:    v.GetString("DATA_FILE"),
			SQLitePath:  v.GetString("SQLITE_PATH"),
			DatabaseURI: v.GetString("DATABASE_URI"),
		},
		Server: server{
			RunAddress:      runAddress,
			StaticDir:       v.GetString("STATIC_DIR"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Logger: logger{LogLevel: v.GetString("LOG_LEVEL")},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, prod, got %q", c.Env))
	}

	switch c.Storage.Backend {
	case BackendJSON:
		if c.Storage.DataFile == "" {
			errs = append(errs, errors.New("DATA_FILE is required for the json backend"))
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite backend"))
		}
	case BackendPostgres:
		if c.Storage.DatabaseURI == "" {
			errs = append(errs, errors.New("DATABASE_URI is required for the postgres backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be one of json, sqlite, postgres, got %q", c.Storage.Backend))
	}

	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}
