// Package config loads the service configuration from a YAML file overlaid
// with environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"gmao" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"gmao" yaml:"password"`
		Host     string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName string `env:"DATABASE_NAME" env-default:"gmao" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used to sign and verify bearer tokens.
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TokenTTL is the lifetime of tokens issued on login
		TokenTTL time.Duration `env:"JWT_TOKEN_TTL" env-default:"24h" yaml:"tokenTTL"`
	} `yaml:"jwt"`

	// Registration holds the shared secrets granting a role on sign up. An
	// empty key disables registration for that role.
	Registration struct {
		ManagerKey    string `env:"REGISTRATION_MANAGER_KEY" yaml:"managerKey"`
		TechnicianKey string `env:"REGISTRATION_TECHNICIAN_KEY" yaml:"technicianKey"`
	} `yaml:"registration"`

	Security struct {
		// BcryptCost is the work factor used when hashing passwords
		BcryptCost int `env:"SECURITY_BCRYPT_COST" env-default:"10" yaml:"bcryptCost"`
	} `yaml:"security"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config file at configPath and overlays environment
// variables. When the file does not exist only the environment is read.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat config file: %w", err)
	}

	return &cfg, nil
}
