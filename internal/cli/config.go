package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends accepted by ServeConfig.Store.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreBolt   = "bolt"
	StoreRedis  = "redis"
)

// ServeConfig holds the settings of the HTTP host.
type ServeConfig struct {
	Addr          string        `env:"SWITCHYARD_ADDR"           envDefault:":8080"`
	Store         string        `env:"SWITCHYARD_STORE"          envDefault:"memory"`
	FileDir       string        `env:"SWITCHYARD_FILE_DIR"       envDefault:".switchyard/sessions"`
	BoltPath      string        `env:"SWITCHYARD_BOLT_PATH"      envDefault:"switchyard.db"`
	RedisAddr     string        `env:"SWITCHYARD_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string        `env:"SWITCHYARD_REDIS_PASSWORD"`
	RedisDB       int           `env:"SWITCHYARD_REDIS_DB"`
	SessionTTL    time.Duration `env:"SWITCHYARD_SESSION_TTL"`
	LockTTL       time.Duration `env:"SWITCHYARD_LOCK_TTL"       envDefault:"30s"`
	LogLevel      string        `env:"SWITCHYARD_LOG_LEVEL"      envDefault:"info"`
	LogJSON       bool          `env:"SWITCHYARD_LOG_JSON"`
}

// LoadServeConfig reads ServeConfig from the environment.
func LoadServeConfig() (ServeConfig, error) {
	var cfg ServeConfig
	if err := env.Parse(&cfg); err != nil {
		return ServeConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
