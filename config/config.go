package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string   `env:"HTTP_ADDR" envDefault:":5555"`
	DatabaseDSN    string   `env:"DB_DSN,required"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	SecureCookies  bool     `env:"SECURE_COOKIES" envDefault:"false"`

	// Chat completion backend. Leave the key empty to disable generated
	// replies; stored chat messages then keep whatever response the client
	// supplied.
	ChatAPIBaseURL string `env:"CHAT_API_BASE_URL" envDefault:"https://api.openai.com/v1"`
	ChatAPIKey     string `env:"CHAT_API_KEY"`
	ChatModel      string `env:"CHAT_MODEL" envDefault:"gpt-4o-mini"`
}

// Load reads .env (if present) and parses the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
