package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BindAddr   string
	LogLevel   string
	ConfigsDir string
	SheetName  string
	MaxRows    int
}

// Load reads ./.env when present; variables already set in the
// environment take precedence over the file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BindAddr:   getEnv("FAKESHEET_BIND_ADDR", ":8080"),
		LogLevel:   getEnv("FAKESHEET_LOG_LEVEL", "info"),
		ConfigsDir: getEnv("FAKESHEET_CONFIGS_DIR", "./configs"),
		SheetName:  getEnv("FAKESHEET_SHEET_NAME", "Dados Gerados"),
		MaxRows:    getEnvAsInt("FAKESHEET_MAX_ROWS", 100000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
