package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL  string        `env:"API_BASE_URL, default=https://mlakumulu-backend-production.up.railway.app"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=30s"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Backend selects where the session lives: "file" (default) or "redis".
	Backend string `env:"SESSION_BACKEND, default=file"`
	// Dir is the file backend's directory. Empty means a "travelctl"
	// directory under the user config dir.
	Dir string `env:"SESSION_DIR"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.Session.Dir == "" {
		cfg.Session.Dir = defaultSessionDir()
	}
	return &cfg
}

func defaultSessionDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		// Last resort; keeps the session out of the working directory.
		base = os.TempDir()
	}
	return filepath.Join(base, "travelctl")
}
