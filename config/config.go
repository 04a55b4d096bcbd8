package config

import (
	"os"
	"strconv"
)

type Config struct {
	BotToken     string
	DatabaseURL  string
	LogChannelID int64

	// Initial verification window; admins adjust it at runtime via /settimer.
	TimeoutSeconds int
}

func Load() *Config {
	timeout, _ := strconv.Atoi(getEnv("TIMEOUT_SECONDS", "30"))
	logChannel, _ := strconv.ParseInt(getEnv("LOG_CHANNEL_ID", "0"), 10, 64)

	return &Config{
		BotToken:       getEnv("BOT_TOKEN", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		LogChannelID:   logChannel,
		TimeoutSeconds: timeout,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
