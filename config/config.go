package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, parsed from environment variables.
type Config struct {
	MongoURI        string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB         string        `envconfig:"MONGO_DB" default:"growthhub"`
	MaxPoolSize     uint64        `envconfig:"MONGO_MAX_POOL_SIZE" default:"100"`
	MinPoolSize     uint64        `envconfig:"MONGO_MIN_POOL_SIZE" default:"10"`
	MaxConnIdleTime time.Duration `envconfig:"MONGO_MAX_CONN_IDLE_TIME" default:"60s"`
	RetryWrites     bool          `envconfig:"MONGO_RETRY_WRITES" default:"true"`

	Port string `envconfig:"PORT" default:"5000"`

	// Optional: list responses are cached in Redis when set.
	RedisURL        string        `envconfig:"REDIS_URL"`
	CatalogCacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"30s"`

	MaxRequestBody int64 `envconfig:"MAX_REQUEST_BODY" default:"1048576"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
