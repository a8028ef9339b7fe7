package config

import (
	"os"
	"strconv"

	"pomodoro_tracker/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	// Password for the seed admin created on first boot
	SeedAdminPassword string

	AutoMigrate bool

	LogLevel string
	LogJSON  bool

	// Optional Redis for rate limiting; empty addr disables it
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from the environment, falling back to .env.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	seedPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if seedPassword == "" {
		seedPassword = "12345"
	}

	autoMigrate := true
	if v := os.Getenv("DB_AUTOMIGRATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			autoMigrate = b
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:           port,
		DatabaseURL:       dbURL,
		JWTSecret:         jwtSecret,
		SeedAdminPassword: seedPassword,
		AutoMigrate:       autoMigrate,
		LogLevel:          logLevel,
		LogJSON:           os.Getenv("LOG_JSON") == "true",
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           redisDB,
	}
}
