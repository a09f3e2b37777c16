package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "JWT_SECRET", "JWT_TTL_HOURS", "ADMIN_EMAIL", "ADMIN_PASSWORD", "SEED_ON_START", "CITY_RECOUNT_CRON"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.True(t, cfg.Server.SeedOnStart)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "conquista@imobhub.com.br", cfg.Admin.Email)
	assert.Equal(t, "Conquista2025#", cfg.Admin.Password)
	assert.Equal(t, "@hourly", cfg.Cron.CityRecount)
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", DriverRedis)
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_TTL_HOURS", "abc")
	t.Setenv("SEED_ON_START", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Server.SeedOnStart)
	assert.Equal(t, "redis:6379", cfg.Store.RedisAddr)
	assert.Equal(t, 2, cfg.Store.RedisDB)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		store   StoreConfig
		wantErr bool
	}{
		{"memory", StoreConfig{Driver: DriverMemory}, false},
		{"sqlite", StoreConfig{Driver: DriverSQLite}, false},
		{"postgres without url", StoreConfig{Driver: DriverPostgres}, true},
		{"postgres", StoreConfig{Driver: DriverPostgres, DatabaseURL: "postgres://localhost/imobhub"}, false},
		{"redis without addr", StoreConfig{Driver: DriverRedis}, true},
		{"unknown driver", StoreConfig{Driver: "mongo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{Port: "3000"},
				Store:  tt.store,
				JWT:    JWTConfig{Secret: "secret"},
			}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestR2ConfigEnabled(t *testing.T) {
	cfg := R2Config{AccountID: "acc", AccessKey: "key", SecretKey: "secret", Bucket: "imoveis"}
	assert.True(t, cfg.Enabled())

	cfg.Bucket = ""
	assert.False(t, cfg.Enabled())
}
