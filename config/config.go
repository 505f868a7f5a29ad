package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env   string
	Port  string
	DBURL string

	AccessTokenSecret string
	AccessExpiryMin   int
	RefreshExpiryMin  int

	VerifyTokenExpiryMin int
	ResetTokenExpiryMin  int

	LoginMaxAttempts   int
	LockoutDurationMin int

	PasswordMinLength    int
	PasswordHistoryCount int
	BcryptCost           int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return &Config{
		Env:   getEnv("ENV", "development"),
		Port:  getEnv("PORT", "8080"),
		DBURL: mustGetEnv("DB_URL"),

		AccessTokenSecret: mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:   getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshExpiryMin:  getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),

		VerifyTokenExpiryMin: getEnvAsInt("VERIFY_TOKEN_EXPIRY", 1440),
		ResetTokenExpiryMin:  getEnvAsInt("RESET_TOKEN_EXPIRY", 60),

		LoginMaxAttempts:   getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
		LockoutDurationMin: getEnvAsInt("LOCKOUT_DURATION", 30),

		PasswordMinLength:    getEnvAsInt("PASSWORD_MIN_LENGTH", 12),
		PasswordHistoryCount: getEnvAsInt("PASSWORD_HISTORY_COUNT", 5),
		BcryptCost:           getEnvAsInt("BCRYPT_COST", 12),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
