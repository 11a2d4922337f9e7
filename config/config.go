package config

import (
	"time"

	"main/utils"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	MetricsInterval time.Duration
}

type DatabaseConfig struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	ConnectTimeout  time.Duration
	// OperationTimeout bounds every single store call so no request
	// can hang on a dead connection.
	OperationTimeout time.Duration
	RetryWrites      bool
}

type AuthConfig struct {
	JWTSecret string
	// TokenExpiry is the bearer token validity window. Defaults to one
	// calendar day from issuance.
	TokenExpiry time.Duration
	// BcryptCost is the bcrypt work factor. Kept configurable so it can
	// be raised as hardware improves.
	BcryptCost int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            utils.GetEnvAsString("PORT", "5000"),
			ShutdownTimeout: utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxBodyBytes:    int64(utils.GetEnvAsInt("MAX_BODY_BYTES", 1<<20)),
			MetricsInterval: utils.GetEnvAsDuration("METRICS_INTERVAL", 15*time.Second),
		},
		Database: DatabaseConfig{
			URI:              utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
			DatabaseName:     utils.GetEnvAsString("MONGO_DB", "shadownotes"),
			MaxPoolSize:      utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:      utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
			MaxConnIdleTime:  utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", 60*time.Second),
			ConnectTimeout:   utils.GetEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			OperationTimeout: utils.GetEnvAsDuration("MONGO_OPERATION_TIMEOUT", 5*time.Second),
			RetryWrites:      utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
		},
		Auth: AuthConfig{
			JWTSecret:   utils.GetEnvAsString("JWT_SECRET_KEY", ""),
			TokenExpiry: utils.GetEnvAsDuration("JWT_EXPIRATION_TIME", 24*time.Hour),
			BcryptCost:  utils.GetEnvAsInt("BCRYPT_COST", 10),
		},
	}
}
