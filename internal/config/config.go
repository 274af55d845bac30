package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                  string
	MongoURI             string
	MongoDB              string
	ServerAddr           string
	FrontendOrigins      []string
	RateLimitSubmissions int
	RateLimitWindowSec   int
	RedisURL             string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	BrevoAPIKey          string
	BrevoSenderEmail     string
	BrevoSenderName      string
	BrevoSandbox         bool
	NotifyEmail          string
	Timezone             *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Load reads the process environment. Values from a local .env file fill in
// keys that are not already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "UTC"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGODB_URI", getEnv("MONGODB_URL", getEnv("MONGO_URI", "mongodb://localhost:27017/portfolio")))
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "portfolio"
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		MongoURI:             mongoURI,
		MongoDB:              mongoDB,
		ServerAddr:           getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigins:      splitList(getEnv("FRONTEND_ORIGINS", getEnv("FRONTEND_ORIGIN", "http://localhost:3000"))),
		RateLimitSubmissions: getEnvInt("RATE_LIMIT_SUBMISSIONS", 5),
		RateLimitWindowSec:   getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		RedisURL:             getEnv("REDIS_URL", ""),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		BrevoAPIKey:          getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail:     getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:      getEnv("BREVO_SENDER_NAME", ""),
		BrevoSandbox:         getEnvBool("BREVO_SANDBOX", false),
		NotifyEmail:          getEnv("NOTIFY_EMAIL", ""),
		Timezone:             loc,
	}

	return cfg, nil
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; we only support the first one as db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
