package lookup

import "time"

type Config struct {
	ConnectionString  string        `env:"LOOKUP_DB_URL,required"`                       // ConnectionString is the connection string to the database.
	MaxOpenConns      int32         `env:"LOOKUP_DB_MAX_OPEN_CONNS" envDefault:"10"`     // MaxOpenConns is the maximum number of open connections to the database.
	MaxIdleConns      int32         `env:"LOOKUP_DB_MAX_IDLE_CONNS" envDefault:"5"`      // MaxIdleConns is the maximum number of idle connections to the database.
	HealthCheckPeriod time.Duration `env:"LOOKUP_DB_HEALTHCHECK_PERIOD" envDefault:"1m"` // HealthCheckPeriod is the period between pool health checks.

	RetryAttempts int           `env:"LOOKUP_DB_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval time.Duration `env:"LOOKUP_DB_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the interval between retry attempts.
}
