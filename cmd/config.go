package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment at startup.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL,required"`
	HTTPPort    string        `env:"HTTP_PORT"    envDefault:"5000"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	JWTExpire   time.Duration `env:"JWT_EXPIRE"   envDefault:"720h"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:","`
	LogLevel    slog.Level    `env:"LOG_LEVEL"    envDefault:"info"`
	BcryptCost  int           `env:"BCRYPT_COST"  envDefault:"10"`
}

// LoadConfig reads path, when it exists, into the process environment and parses it.
// Variables already set in the environment win over the file.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return ParseConfig(env.Options{})
}

// ParseConfig parses the environment selected by opts.
func ParseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTExpire <= 0 {
		return Config{}, fmt.Errorf("parse env: JWT_EXPIRE must be positive, got %s", cfg.JWTExpire)
	}
	return cfg, nil
}
