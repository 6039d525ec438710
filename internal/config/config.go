package config

import (
	"os"
	"strconv"
)

type Config struct {
	ListenAddr       string
	DBPath           string
	ImagePath        string
	LogLevel         string
	LogFormat        string
	LogFile          string
	SeedCatalog      bool
	AboutConcurrency int
}

func Load() *Config {
	return &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		DBPath:           getEnv("DB_PATH", "/data/shoptime.db"),
		ImagePath:        getEnv("IMAGE_PATH", "/data/img"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		LogFile:          getEnv("LOG_FILE", ""),
		SeedCatalog:      getEnvBool("SEED_CATALOG", true),
		AboutConcurrency: getEnvInt("ABOUT_CONCURRENCY", 4),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

// getEnvBool falls back to defaultVal when the variable is unset or unparsable.
func getEnvBool(key string, defaultVal bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return n
}
