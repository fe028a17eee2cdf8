package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	AppEnv        string
	Port          string
	StorageDriver string
	SeedCatalog   bool

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBMaxConns  int32

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	ProductCacheTTL time.Duration

	UploadDir     string
	MaxUploadSize int64

	CloudinaryURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	OriginURL string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Storage driver: %s", AppConfig.StorageDriver)
	log.Printf("Server will run on port: %s", AppConfig.Port)
	return AppConfig
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize <= 0 {
		maxUploadSize = 5242880
	}

	maxConns, _ := strconv.Atoi(os.Getenv("DB_MAX_CONNS"))
	if maxConns <= 0 {
		maxConns = 25
	}

	cacheTTL, err := time.ParseDuration(getEnv("PRODUCT_CACHE_TTL", "5m"))
	if err != nil {
		log.Printf("Warning: invalid PRODUCT_CACHE_TTL, using 5m: %v", err)
		cacheTTL = 5 * time.Minute
	}

	seed, err := strconv.ParseBool(getEnv("SEED_CATALOG", "true"))
	if err != nil {
		seed = true
	}

	driver := strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory))
	if driver != StorageMemory && driver != StoragePostgres {
		log.Printf("Warning: unknown STORAGE_DRIVER %q, using %s", driver, StorageMemory)
		driver = StorageMemory
	}

	return &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		StorageDriver: driver,
		SeedCatalog:   seed,

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "storefront"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:  int32(maxConns),

		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ProductCacheTTL: cacheTTL,

		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize: maxUploadSize,

		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		OriginURL: os.Getenv("ORIGIN_URL"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
