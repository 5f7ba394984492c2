package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/yungbote/agroregistry-backend/internal/data/db"
	"github.com/yungbote/agroregistry-backend/internal/observability"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

type Config struct {
	DB   db.Config
	Otel observability.OtelConfig

	HTTPAddr       string   `env:"HTTP_ADDR" envDefault:":8080"`
	JWTSecretKey   string   `env:"JWT_SECRET_KEY,required"`
	LogMode        string   `env:"LOG_MODE" envDefault:"development"`
	MetricsEnabled bool     `env:"METRICS_ENABLED" envDefault:"true"`
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:","`
	BcryptCost     int      `env:"BCRYPT_COST" envDefault:"10"`
	AutoMigrate    bool     `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// LoadDotEnv reads .env.<APP_ENV> and then .env when present. Variables
// already set in the process win.
func LoadDotEnv() []string {
	files := []string{".env"}
	if appEnv := strings.TrimSpace(os.Getenv("APP_ENV")); appEnv != "" {
		files = append([]string{".env." + appEnv}, files...)
	}
	var loaded []string
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	return loaded
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LogConfig writes the effective configuration at debug level, secrets masked.
func (c Config) LogConfig(log *logger.Logger) {
	log.Debug("config",
		"http_addr", c.HTTPAddr,
		"db_driver", c.DB.Driver,
		"db_host", c.DB.Host,
		"db_name", c.DB.Name,
		"sqlite_path", c.DB.SQLitePath,
		"log_mode", c.LogMode,
		"metrics_enabled", c.MetricsEnabled,
		"otel_enabled", c.Otel.Enabled,
		"jwt_secret_set", c.JWTSecretKey != "",
	)
}
