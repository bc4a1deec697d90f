package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Refresh  RefreshConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	// DevMode swaps redis/postgres for in-memory stores.
	DevMode bool
}

type DatabaseConfig struct {
	Connection string
}

type RefreshConfig struct {
	// SettleDelay waits out the host's variable flush after a lifecycle
	// event before reading state.
	SettleDelay time.Duration
	// Cooldown collapses refresh triggers per conversation.
	Cooldown time.Duration
	// SubscribeMaxTries bounds the bus subscription retry.
	SubscribeMaxTries uint
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			DevMode:            getEnvAsBool("DEV_MODE", false),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Refresh: RefreshConfig{
			SettleDelay:       time.Duration(getEnvAsInt("REFRESH_SETTLE_DELAY_MS", 500)) * time.Millisecond,
			Cooldown:          time.Duration(getEnvAsInt("REFRESH_COOLDOWN_MS", 2000)) * time.Millisecond,
			SubscribeMaxTries: uint(getEnvAsInt("BUS_SUBSCRIBE_MAX_TRIES", 5)),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
