package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is the explicit allow-list for credentialed cross-origin
	// requests (comma-separated). Defaults are applied in Load because tag
	// defaults cannot contain commas.
	CORSOrigins []string `env:"CORS_ORIGINS"`

	Session SessionConfig
	Auth    AuthConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// TTL is the fixed session lifetime; there is no sliding expiration.
	TTL time.Duration `env:"SESSION_TTL, default=1h"`
	// CookieSecure must be enabled for any non-local deployment.
	CookieSecure bool `env:"SESSION_COOKIE_SECURE, default=false"`
}

type AuthConfig struct {
	BcryptCost int `env:"BCRYPT_COST, default=10"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=employee_db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// defaultCORSOrigins matches the browser client's local development setup.
var defaultCORSOrigins = []string{
	"http://127.0.0.1:5500",
	"http://localhost:5500",
	"http://localhost:3000",
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultCORSOrigins
	}
	return &cfg
}
