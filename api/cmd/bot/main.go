package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"math-tutor/api/internal/config"
	"math-tutor/api/internal/httpserver"
	"math-tutor/api/internal/llm"
	"math-tutor/api/internal/llm/deepseek"
	"math-tutor/api/internal/llm/gemini"
	"math-tutor/api/internal/llm/openai"
	"math-tutor/api/internal/store"
	"math-tutor/api/internal/telegram"
	"math-tutor/api/internal/util"
)

func main() {
	cfg := config.Load()

	if strings.TrimSpace(cfg.TelegramBotToken) == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}

	// --- Postgres ---
	dsn := resolveDSN()
	if dsn == "" {
		log.Fatal("database DSN is empty: set DATABASE_URL or POSTGRES_* env vars")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("sql.Open: %v", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(1 * time.Hour)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		log.Printf("db connected")
	}

	// --- Telegram bot ---
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	engines := llm.Engines{
		Gemini:   gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI:   openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Deepseek: deepseek.New(cfg.DeepseekAPIKey, cfg.DeepseekModel),
	}

	r := &telegram.Router{
		Bot:        bot,
		EngManager: llm.NewManager(engines.Gemini),
		Repo:       store.NewExplainRepo(db),
	}

	addr := "0.0.0.0:" + cfg.Port
	healthz := func(ctx context.Context) error { return db.PingContext(ctx) }

	if strings.TrimSpace(cfg.WebhookURL) != "" {
		startWebhookMode(addr, bot, r, cfg.WebhookURL, engines, healthz)
	} else {
		startPollingMode(addr, bot, r, engines, healthz)
	}
}

// ---------------- Modes -----------------

func startWebhookMode(addr string, bot *tgbotapi.BotAPI, r *telegram.Router, baseURL string, engines llm.Engines, healthz func(context.Context) error) {
	// секретный путь вебхука
	path := "/webhook/" + util.SHA256Hex([]byte(bot.Token))[:16]
	public := strings.TrimRight(baseURL, "/") + path

	wh, err := tgbotapi.NewWebhook(public)
	if err != nil {
		log.Fatal(err)
	}
	wh.DropPendingUpdates = true
	if _, err := bot.Request(wh); err != nil {
		log.Fatal(err)
	}

	// ListenForWebhook регистрирует обработчик на DefaultServeMux
	updates := bot.ListenForWebhook(path)
	go func() {
		for upd := range updates {
			r.HandleUpdate(upd, engines)
		}
		log.Printf("webhook updates channel closed")
	}()

	log.Printf("webhook path: %s", path)
	log.Fatal(httpserver.StartHTTP(addr, healthz))
}

func startPollingMode(addr string, bot *tgbotapi.BotAPI, r *telegram.Router, engines llm.Engines, healthz func(context.Context) error) {
	go func() {
		log.Fatal(httpserver.StartHTTP(addr, healthz))
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30 // long polling, sec

	offset := 0
	for {
		u.Offset = offset
		updates, err := bot.GetUpdates(u)
		if err != nil {
			log.Printf("polling error: %v; retry in 2s", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			r.HandleUpdate(upd, engines)
		}
		if len(updates) == 0 {
			time.Sleep(200 * time.Millisecond)
		}
	}
}

// ---------------- Helpers -----------------

func resolveDSN() string {
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		return v
	}
	user := getenvDefault("POSTGRES_USER", "tutor")
	pass := os.Getenv("POSTGRES_PASSWORD")
	host := getenvDefault("PGHOST", "db")
	port := getenvDefault("PGPORT", "5432")
	db := getenvDefault("POSTGRES_DB", "tutor")

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getenvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
