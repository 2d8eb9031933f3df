package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	TelegramBotToken string
	WebhookURL       string

	GeminiAPIKey   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIModel    string
	DeepseekAPIKey string
	DeepseekModel  string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env для локального запуска; в проде переменные приходят из окружения
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		WebhookURL:       os.Getenv("WEBHOOK_URL"),

		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		DeepseekAPIKey: os.Getenv("DEEPSEEK_API_KEY"),
		DeepseekModel:  getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
	}
}
