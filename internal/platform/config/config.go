package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the service configuration
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	JWT        JWTConfig        `json:"jwt"`
	Security   SecurityConfig   `json:"security"`
	Cache      CacheConfig      `json:"cache"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Debug       bool   `json:"debug"`
	TestMode    bool   `json:"testMode"`
	CORSOrigins string `json:"corsOrigins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Type     string           `json:"type"`
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	DSN             string        `json:"dsn"`
	SSLMode         string        `json:"sslMode"`
	ConnectTimeout  int           `json:"connectTimeout"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	PublicKey  string        `json:"publicKey"`
	PrivateKey string        `json:"privateKey"`
	Issuer     string        `json:"issuer"`
	TTL        time.Duration `json:"ttl"`
}

// SecurityConfig holds password hashing configuration
type SecurityConfig struct {
	BcryptWorkFactor int `json:"bcryptWorkFactor"`
	MinPasswordScore int `json:"minPasswordScore"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL             time.Duration `json:"ttl"`
	Enabled         bool          `json:"enabled"`
	Backend         string        `json:"backend"`
	Prefix          string        `json:"prefix"`
	MaxKeys         int           `json:"maxKeys"`
	CleanupInterval time.Duration `json:"cleanupInterval"`
	Redis           RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string `json:"address"`
	Password     string `json:"password"`
	Database     int    `json:"database"`
	PoolSize     int    `json:"poolSize"`
	MinIdleConns int    `json:"minIdleConns"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints
type RateLimitsConfig struct {
	Token    RateLimitConfig `json:"token"`
	Register RateLimitConfig `json:"register"`
}

// LoadFromEnv loads configuration from the environment.
// Precedence:
// 1. Explicit environment variables
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	// godotenv never overrides variables that are already set.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return load(func(key string) (string, bool) {
		value := os.Getenv(key)
		return value, value != ""
	})
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return load(func(key string) (string, bool) {
		value, ok := envMap[key]
		return value, ok
	})
}

func load(lookup func(string) (string, bool)) (*Config, error) {
	e := env(lookup)
	testMode := e.getBool("TEST_MODE", false)

	database := "jobly"
	if testMode {
		database = "jobly_test"
	}
	bcryptWorkFactor := 12
	if testMode {
		bcryptWorkFactor = 4
	}

	config := &Config{
		Server: ServerConfig{
			Host:        e.get("HOST", "0.0.0.0"),
			Port:        e.getInt("PORT", 3001),
			Debug:       e.getBool("DEBUG", false),
			TestMode:    testMode,
			CORSOrigins: e.get("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Type: e.get("DB_TYPE", "postgresql"),
			Postgres: PostgreSQLConfig{
				Host:            e.get("POSTGRES_HOST", "localhost"),
				Port:            e.getInt("POSTGRES_PORT", 5432),
				Username:        e.get("POSTGRES_USERNAME", ""),
				Password:        e.get("POSTGRES_PASSWORD", ""),
				Database:        e.get("POSTGRES_DATABASE", database),
				DSN:             e.get("DATABASE_URL", ""),
				SSLMode:         e.get("POSTGRES_SSL_MODE", "disable"),
				ConnectTimeout:  e.getInt("POSTGRES_CONNECT_TIMEOUT", 10),
				MaxOpenConns:    e.getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    e.getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(e.getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			PublicKey:  e.get("JWT_PUBLIC_KEY", ""),
			PrivateKey: e.get("JWT_PRIVATE_KEY", ""),
			Issuer:     e.get("JWT_ISSUER", "jobly"),
			TTL:        e.getDuration("JWT_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptWorkFactor: e.getInt("BCRYPT_WORK_FACTOR", bcryptWorkFactor),
			MinPasswordScore: e.getInt("MIN_PASSWORD_SCORE", 2),
		},
		Cache: CacheConfig{
			TTL:             e.getDuration("CACHE_TTL", 5*time.Minute),
			Enabled:         e.getBool("CACHE_ENABLED", true),
			Backend:         e.get("CACHE_BACKEND", "memory"),
			Prefix:          e.get("CACHE_PREFIX", "jobly:"),
			MaxKeys:         e.getInt("CACHE_MAX_KEYS", 10000),
			CleanupInterval: e.getDuration("CACHE_CLEANUP_INTERVAL", 5*time.Minute),
			Redis: RedisConfig{
				Address:      e.get("REDIS_ADDRESS", "localhost:6379"),
				Password:     e.get("REDIS_PASSWORD", ""),
				Database:     e.getInt("REDIS_DATABASE", 0),
				PoolSize:     e.getInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: e.getInt("REDIS_MIN_IDLE_CONNS", 2),
			},
		},
		RateLimits: RateLimitsConfig{
			Token: RateLimitConfig{
				Enabled:  e.getBool("RATE_LIMIT_TOKEN_ENABLED", true),
				Max:      e.getInt("RATE_LIMIT_TOKEN_MAX", 10),
				Duration: e.getDuration("RATE_LIMIT_TOKEN_DURATION", 15*time.Minute),
			},
			Register: RateLimitConfig{
				Enabled:  e.getBool("RATE_LIMIT_REGISTER_ENABLED", true),
				Max:      e.getInt("RATE_LIMIT_REGISTER_MAX", 10),
				Duration: e.getDuration("RATE_LIMIT_REGISTER_DURATION", 1*time.Hour),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.JWT.PublicKey) == "" {
		errors = append(errors, "JWT_PUBLIC_KEY is required")
	}
	if strings.TrimSpace(c.JWT.PrivateKey) == "" {
		errors = append(errors, "JWT_PRIVATE_KEY is required")
	}

	validDbTypes := []string{"postgresql"}
	if !contains(validDbTypes, c.Database.Type) {
		errors = append(errors, fmt.Sprintf("DB_TYPE must be one of: %s", strings.Join(validDbTypes, ", ")))
	}

	validBackends := []string{"memory", "redis"}
	if c.Cache.Enabled && !contains(validBackends, c.Cache.Backend) {
		errors = append(errors, fmt.Sprintf("CACHE_BACKEND must be one of: %s", strings.Join(validBackends, ", ")))
	}

	if c.Security.BcryptWorkFactor < 4 || c.Security.BcryptWorkFactor > 31 {
		errors = append(errors, "BCRYPT_WORK_FACTOR must be between 4 and 31")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// env reads typed values, falling back to the default when a key is missing
// or does not parse.
type env func(string) (string, bool)

func (e env) get(key, defaultValue string) string {
	if value, ok := e(key); ok {
		return value
	}
	return defaultValue
}

func (e env) getInt(key string, defaultValue int) int {
	if value, ok := e(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (e env) getBool(key string, defaultValue bool) bool {
	if value, ok := e(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func (e env) getDuration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := e(key); ok {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
