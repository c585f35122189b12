package mongo

import "time"

// Config drives the MongoDB connection and is populated from the
// environment. Only the connection URL is mandatory; pool and retry
// settings carry defaults that suit a typical document workload.
type Config struct {
	ConnectionURL   string        `env:"UBORA_MONGODB_URL,required"`
	ConnectTimeout  time.Duration `env:"UBORA_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"UBORA_MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"UBORA_MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"UBORA_MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"UBORA_MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"UBORA_MONGODB_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"UBORA_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"UBORA_MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}
