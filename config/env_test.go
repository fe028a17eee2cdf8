package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_PORT", "PORT", "STORAGE_DRIVER", "SEED_CATALOG", "DATABASE_URL",
		"DB_MAX_CONNS", "PRODUCT_CACHE_TTL", "MAX_UPLOAD_SIZE", "UPLOAD_DIR", "REDIS_URL", "REDIS_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Minute, cfg.ProductCacheTTL)
	assert.Equal(t, int64(5242880), cfg.MaxUploadSize)
	assert.Equal(t, "./uploads", cfg.UploadDir)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("PRODUCT_CACHE_TTL", "30s")
	t.Setenv("MAX_UPLOAD_SIZE", "1024")

	cfg := FromEnv()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.False(t, cfg.SeedCatalog)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
	assert.Equal(t, 30*time.Second, cfg.ProductCacheTTL)
	assert.Equal(t, int64(1024), cfg.MaxUploadSize)
}

func TestFromEnvFallsBackOnBadValues(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SEED_CATALOG", "maybe")
	t.Setenv("PRODUCT_CACHE_TTL", "soon")
	t.Setenv("DB_MAX_CONNS", "-1")

	cfg := FromEnv()
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, 5*time.Minute, cfg.ProductCacheTTL)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
}

func TestBuildDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "shop", DBPassword: "secret", DBHost: "db", DBPort: "6543",
		DBName: "storefront", DBSSLMode: "require",
	}
	assert.Equal(t, "postgres://shop:secret@db:6543/storefront?sslmode=require", BuildDSN(cfg))

	cfg.DatabaseURL = "postgres://override/db"
	assert.Equal(t, "postgres://override/db", BuildDSN(cfg))
}
