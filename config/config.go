package config

import (
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from the environment.
// This is a simple way to make config accessible globally.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	Port        string `env:"PORT,default=3000"`

	MongoURI string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB,default=sklyit"`

	// RedisURL is optional; when empty the search cache falls back to the
	// in-process store.
	RedisURL       string        `env:"REDIS_URL"`
	SearchCacheTTL time.Duration `env:"SEARCH_CACHE_TTL,default=5m"`

	AzureStorageConnString string `env:"AZURE_STORAGE_CONNECTION_STRING"`
	AzureContainerName     string `env:"AZURE_STORAGE_CONTAINER_NAME,default=biz"`

	SMTPHost  string `env:"SMTP_HOST,default=smtp.gmail.com"`
	SMTPPort  int    `env:"SMTP_PORT,default=587"`
	EmailUser string `env:"EMAIL_USER"`
	EmailPass string `env:"EMAIL_PASS"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// AppConfig holds the application-wide configuration.
var AppConfig Config

// Load reads .env (if present) and decodes the environment into AppConfig.
func Load() error {
	// A missing .env file is fine; the process environment is used directly.
	_ = godotenv.Load()
	return envdecode.StrictDecode(&AppConfig)
}
