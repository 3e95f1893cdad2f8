package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	DatabaseURL   string

	OpenAIKey   string
	OpenAIModel string

	AdminPassword string
	JWTSecret     string

	DataDir string

	Telegram TelegramConfig

	RateLimit RateLimitConfig
}

type TelegramConfig struct {
	Token  string
	ChatID int64
}

type RateLimitConfig struct {
	WindowSeconds int
	MaxRequests   int
}

// Load reads configuration from the environment. A .env file is honoured
// outside production, matching how the service is run locally.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	chatID, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)

	return &Config{
		Port:          getEnv("PORT", "3001"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		AdminPassword: getEnv("ADMIN_PASSWORD", "dhafood2025"),
		JWTSecret:     os.Getenv("JWT_SECRET"),

		DataDir: getEnv("DATA_DIR", "."),

		Telegram: TelegramConfig{
			Token:  os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID: chatID,
		},

		RateLimit: RateLimitConfig{
			WindowSeconds: getEnvInt("RATE_WINDOW_SECONDS", 60),
			MaxRequests:   getEnvInt("RATE_MAX_REQUESTS", 30),
		},
	}
}

// RemoteEnabled reports whether the OpenAI-backed suggestion strategy can run.
func (c *Config) RemoteEnabled() bool {
	return c.OpenAIKey != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
