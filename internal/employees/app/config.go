package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/service"
	"github.com/aussiebroadwan/staffdb/pkg/cryptox"
	"github.com/aussiebroadwan/staffdb/pkg/jwtx"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	JWTSecret      string        // Required: HS256 signing secret
	Issuer         string        // Optional: iss claim (default: staffdb)
	AccessTokenTTL time.Duration // Optional: token lifetime (default: 30m)

	Username     string // Required: operator username accepted by POST /token
	Password     string // Plain operator password, hashed at startup
	PasswordHash string // argon2id PHC hash, used instead of Password when set
	Pepper       string // Optional: pepper for the operator password hash

	DatabaseDriver string // sqlite, postgres or mongo (default: sqlite)
	DatabaseURL    string // DSN or URI (default: employees.db for sqlite)
	DBName         string // Mongo database name (default: staffdb)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first; variables already set win.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
		Issuer:         getEnvOrDefault("AUTH_ISSUER", "staffdb"),
		AccessTokenTTL: getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		Username:     os.Getenv("AUTH_USERNAME"),
		Password:     os.Getenv("AUTH_PASSWORD"),
		PasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
		Pepper:       os.Getenv("AUTH_PEPPER"),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseURL:    getEnvOrDefault("DATABASE_URL", os.Getenv("MONGO_URI")),
		DBName:         getEnvOrDefault("DB_NAME", "staffdb"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.DatabaseURL == "" && cfg.DatabaseDriver == DriverSQLite {
		cfg.DatabaseURL = "employees.db"
	}

	return cfg
}

// Validate reports every missing or inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	}
	if c.Username == "" {
		errs = append(errs, errors.New("AUTH_USERNAME is required"))
	}
	switch {
	case c.PasswordHash != "" && !cryptox.IsPHCHash(c.PasswordHash):
		errs = append(errs, errors.New("AUTH_PASSWORD_HASH must be an argon2id PHC string"))
	case c.PasswordHash == "" && c.Password == "":
		errs = append(errs, errors.New("one of AUTH_PASSWORD or AUTH_PASSWORD_HASH is required"))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}

	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres, DriverMongo:
		if c.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for the %s driver", c.DatabaseDriver))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	return errors.Join(errs...)
}

// TokenConfig builds the token authority configuration, hashing the plain
// operator password when no hash was given.
func (c Config) TokenConfig() (*service.TokenConfig, error) {
	hash := c.PasswordHash
	if hash == "" {
		var err error
		hash, err = cryptox.PasswordHasher{Pepper: c.Pepper}.Hash(c.Password)
		if err != nil {
			return nil, fmt.Errorf("hash operator password: %w", err)
		}
	}

	return &service.TokenConfig{
		Secret:       []byte(c.JWTSecret),
		Issuer:       c.Issuer,
		TTL:          c.AccessTokenTTL,
		Username:     c.Username,
		PasswordHash: hash,
		Pepper:       c.Pepper,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
