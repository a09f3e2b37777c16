package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Cron    CronConfig
	Storage R2Config
}

type ServerConfig struct {
	Port string
	// SeedOnStart runs the default data bootstrap before serving.
	SeedOnStart bool
}

// StoreConfig selects the backend behind the key-value store.
// Driver is one of memory, redis, postgres, sqlite.
type StoreConfig struct {
	Driver        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string
	SQLitePath    string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// AdminConfig is the single demo credential pair accepted by login.
type AdminConfig struct {
	Email    string
	Password string
}

type CronConfig struct {
	CityRecount string
}

type R2Config struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// Enabled reports whether uploads can be sent to R2.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "3000"),
			SeedOnStart: getEnvAsBool("SEED_ON_START", true),
		},
		Store: StoreConfig{
			Driver:        getEnv("STORE_DRIVER", DriverMemory),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			DatabaseURL:   getEnv("DATABASE_URL", ""),
			SQLitePath:    getEnv("SQLITE_PATH", "imobhub.db"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "conquista-dev-secret"),
			TTL:    time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "conquista@imobhub.com.br"),
			Password: getEnv("ADMIN_PASSWORD", "Conquista2025#"),
		},
		Cron: CronConfig{
			CityRecount: getEnv("CITY_RECOUNT_CRON", "@hourly"),
		},
		Storage: R2Config{
			AccountID: getEnv("R2_ACCOUNT_ID", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
			Bucket:    getEnv("R2_BUCKET_NAME", ""),
			PublicURL: getEnv("R2_PUBLIC_URL", "https://cdn.imobhub.com.br"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	case DriverRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis driver")
		}
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
