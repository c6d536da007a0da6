package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// The defaults reproduce the ps2017nss results site exactly, so running with no
// environment at all scrapes the real election data.
type Config struct {
	BaseURL  string
	RootPath string

	OutputDir        string
	RequestTimeoutMs int
	UserAgent        string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		BaseURL:  getEnv("VOLBY_BASE_URL", "https://www.volby.cz/pls/ps2017nss/"),
		RootPath: getEnv("VOLBY_ROOT_PATH", "ps3?xjazyk=CZ"),

		OutputDir:        getEnv("OUTPUT_DIR", "."),
		RequestTimeoutMs: getEnvInt("REQUEST_TIMEOUT_MS", 30000),
		UserAgent:        getEnv("USER_AGENT", "volby-scraper/1.0"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
