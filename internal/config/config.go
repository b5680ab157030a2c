package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment with
// an optional .env file on top.
type Config struct {
	BotToken     string
	DataFile     string
	Sellers      []string
	Resetters    []string
	NotifyChatID int64

	SessionTTL time.Duration
	RedisAddr  string // optional: Redis-backed session table
	MySQLDSN   string // optional: sale ledger
	HTTPAddr   string

	LedgerQueueSize   int
	LedgerWorkerCount int
}

// Load reads the configuration. Every value has a default except the
// bot token, which the caller decides how to treat.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		DataFile:          envOr("DATA_FILE", "warehouse_data.json"),
		Sellers:           splitList(envOr("SELLERS", "@DexterNote,@puffplace74")),
		Resetters:         splitList(envOr("RESETTERS", "@puffplace74")),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		MySQLDSN:          os.Getenv("MYSQL_DSN"),
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		LedgerQueueSize:   1000,
		LedgerWorkerCount: 4,
	}

	ttl, err := time.ParseDuration(envOr("SESSION_TTL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	if raw := os.Getenv("NOTIFY_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse NOTIFY_CHAT_ID: %w", err)
		}
		cfg.NotifyChatID = id
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
