package redis

import "time"

// Config drives the Redis connection and is populated from the environment.
// The URL format is "redis://:password@host:6379/0".
type Config struct {
	ConnectionURL  string        `env:"UBORA_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"UBORA_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"UBORA_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"UBORA_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}
