package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Supabase SupabaseConfig
	Mirror   MirrorConfig
	Redis    RedisConfig
}

// SupabaseConfig points at the hosted remote store. Remote sync is an
// operating mode, not a hard dependency: leave Key empty (or malformed) and
// the service runs local-only against the mirror.
type SupabaseConfig struct {
	Endpoint string        `env:"SUPABASE_ENDPOINT"`
	Key      string        `env:"SUPABASE_KEY"`
	Timeout  time.Duration `env:"SUPABASE_TIMEOUT, default=15s"`
	Workers  int           `env:"SUPABASE_WRITERS, default=4"`
}

// MirrorConfig selects and locates the local mirror backend.
type MirrorConfig struct {
	Backend string `env:"MIRROR_BACKEND, default=file"` // "file" or "redis"
	Path    string `env:"MIRROR_PATH,    default=data/workshop_mirror.json"`
	Key     string `env:"MIRROR_KEY,     default=workshop_db_v3_sync"`
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
	return &cfg
}
