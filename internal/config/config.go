package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime settings read from the environment.
type Config struct {
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	Port            string
	JWTSecret       string
	ObservationGoal int
}

// Load reads the environment and applies local-dev defaults.
func Load() *Config {
	return &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DB", "educatoreval"),
		RedisAddr:       stripRedisScheme(getEnv("REDIS_URI", "localhost:6379")),
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		ObservationGoal: getEnvInt("OBSERVATION_GOAL", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func stripRedisScheme(addr string) string {
	return strings.TrimPrefix(addr, "redis://")
}
