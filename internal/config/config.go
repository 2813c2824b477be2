package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	StateSecret    string
	RedisURL       string
	RedisPassword  string
	CacheTTLMin    int
	LogLevel       string

	// Board geometry and search depth, fixed for the process lifetime.
	Columns   int
	Rows      int
	WinLength int
	MaxDepth  int
}

func LoadConfig() *Config {
	allowedOrigins := []string{"http://localhost:5173"}
	if extra := GetEnv("ALLOWED_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	return &Config{
		Port:           GetEnv("PORT", "8080"),
		AllowedOrigins: allowedOrigins,
		StateSecret:    GetEnv("STATE_SECRET", "change-this-state-signing-secret"),
		RedisURL:       GetEnv("REDIS_URL", ""),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		CacheTTLMin:    GetEnvAsInt("MOVE_CACHE_TTL_MINUTES", 60),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		Columns:        GetEnvAsInt("BOARD_COLUMNS", 7),
		Rows:           GetEnvAsInt("BOARD_ROWS", 6),
		WinLength:      GetEnvAsInt("WIN_LENGTH", 4),
		MaxDepth:       GetEnvAsInt("SEARCH_DEPTH", 5),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("invalid integer env value, using default")
		return defaultValue
	}
	return value
}
