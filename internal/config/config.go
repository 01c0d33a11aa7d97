// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage drivers selectable with storage.driver.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment is either "development" or "production".
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"    yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"   yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"2m"    yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"    yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT"  env-default:"30s"      yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0"        yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"HTTP_METRICS_PATH"     env-default:"/metrics" yaml:"metricsPath"`
		// Pprof mounts net/http/pprof under /debug/pprof/.
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
	} `yaml:"http"`

	Storage struct {
		// Driver is one of "postgres", "mongo" or "memory".
		Driver string `env:"STORAGE_DRIVER" env-default:"postgres" yaml:"driver"`
	} `yaml:"storage"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"myuser"      yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"mypassword"  yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost"   yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"        yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"     yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"petregistry" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"          yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"8"           yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"          yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"          yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	Mongo struct {
		URI            string        `env:"MONGO_URI"             env-default:"mongodb://localhost:27017/?replicaSet=rs0" yaml:"uri"`
		Database       string        `env:"MONGO_DATABASE"        env-default:"petregistry"                              yaml:"database"`
		ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"                                      yaml:"connectTimeout"`
		MaxPoolSize    uint64        `env:"MONGO_MAX_POOL_SIZE"   env-default:"100"                                      yaml:"maxPoolSize"`
	} `yaml:"mongo"`

	JWT struct {
		// Secret signs and verifies HS256 tokens. It must be set.
		Secret string        `env:"JWT_SECRET" yaml:"secret"`
		TTL    time.Duration `env:"JWT_TTL"    env-default:"1h" yaml:"ttl"`
	} `yaml:"jwt"`

	Password struct {
		BcryptCost int `env:"PASSWORD_BCRYPT_COST" env-default:"12" yaml:"bcryptCost"`
	} `yaml:"password"`

	Registry struct {
		// OperationTimeout bounds every registry operation.
		OperationTimeout time.Duration `env:"REGISTRY_OPERATION_TIMEOUT" env-default:"10s" yaml:"operationTimeout"`
	} `yaml:"registry"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

var (
	errMissingSecret = errors.New("jwt.secret must be set")
	errUnknownDriver = errors.New("unknown storage driver")
)

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errMissingSecret
	}
	switch c.Storage.Driver {
	case DriverPostgres, DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", errUnknownDriver, c.Storage.Driver)
	}

	return nil
}

// Load reads the yaml config file at configPath, applying environment
// overrides. Variables from envFile, when it exists, are loaded into the
// environment first without replacing ones already set.
func Load(configPath, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load env file: %w", err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
