package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries all runtime settings. Everything comes from the
// environment (godotenv loads .env in main), with defaults matching the
// deployed layout.
type Config struct {
	Port string

	// Prebuilt retrieval artifacts; the service fails to start when either
	// cannot be loaded or their sizes disagree.
	IndexPath  string
	CorpusPath string

	LogFile   string
	StaticDir string

	EmbedURL     string
	EmbedAPIKey  string
	EmbedTimeout time.Duration

	TopK int

	// Optional; when unset the embedding cache is disabled.
	RedisAddr     string
	EmbedCacheTTL time.Duration
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		IndexPath:     getenv("INDEX_PATH", "index.db"),
		CorpusPath:    getenv("CORPUS_PATH", "metadata.json"),
		LogFile:       getenv("LOG_FILE", "chat_logs.jsonl"),
		StaticDir:     getenv("STATIC_DIR", "static"),
		EmbedURL:      os.Getenv("EMBED_URL"),
		EmbedAPIKey:   os.Getenv("HF_API_KEY"),
		EmbedTimeout:  durationEnv("EMBED_TIMEOUT", 15*time.Second),
		TopK:          intEnv("TOP_K", 3),
		RedisAddr:     firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		EmbedCacheTTL: durationEnv("EMBED_CACHE_TTL", 24*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
