package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RedisAddr   string
	RedisPwd    string
	WebOrigin   string
	SessionTTL  time.Duration
	Environment string
}

// LoadEnv pulls a .env file into the environment when one exists.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}
}

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	// Sessions live 7 days unless overridden.
	ttl := 7 * 24 * time.Hour
	if d, err := time.ParseDuration(get("SESSION_TTL_SECONDS", "") + "s"); err == nil {
		ttl = d
	}

	return Config{
		RedisAddr:   get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:    os.Getenv("REDIS_PASSWORD"),
		WebOrigin:   get("WEB_ORIGIN", "http://localhost:3000"),
		SessionTTL:  ttl,
		Environment: get("ENV", "development"),
	}
}
