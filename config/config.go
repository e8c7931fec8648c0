package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and handed to whoever needs it; nothing in
// the codebase reads the environment after that.
type Config struct {
	Port      string
	RedisAddr string
	RedisPwd  string
	WebOrigin string

	JWTSecret string
	TokenTTL  time.Duration

	GeocodeURL      string
	GeocodeCacheTTL time.Duration
}

// LoadEnv pulls in a local .env if present; missing files are fine in
// production where the environment is set externally.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println(".env loaded")
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

	ttl := 30 * 24 * time.Hour
	if d, err := time.ParseDuration(get("TOKEN_TTL", "")); err == nil && d > 0 {
		ttl = d
	}
	cacheTTL := 15 * time.Minute
	if d, err := time.ParseDuration(get("GEOCODE_CACHE_TTL", "")); err == nil && d > 0 {
		cacheTTL = d
	}

	return Config{
		Port:            get("PORT", "5000"),
		RedisAddr:       get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:        os.Getenv("REDIS_PASSWORD"),
		WebOrigin:       get("WEB_ORIGIN", "http://localhost:8081"),
		JWTSecret:       get("JWT_SECRET", "dev_only_change_me"),
		TokenTTL:        ttl,
		GeocodeURL:      get("GEOCODE_URL", "https://photon.komoot.io/api/"),
		GeocodeCacheTTL: cacheTTL,
	}
}
