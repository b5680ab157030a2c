package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	tele "gopkg.in/telebot.v4"

	"github.com/puffplace74/warehouse-bot/internal/adapter/handler"
	"github.com/puffplace74/warehouse-bot/internal/adapter/notify"
	"github.com/puffplace74/warehouse-bot/internal/adapter/storage"
	"github.com/puffplace74/warehouse-bot/internal/config"
	"github.com/puffplace74/warehouse-bot/internal/core/service"
	"github.com/puffplace74/warehouse-bot/internal/port"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Inventory store
	store := storage.NewFileAdapter(cfg.DataFile)
	if err := store.Load(ctx); err != nil {
		log.Fatalf("load inventory: %v", err)
	}
	log.Printf("inventory loaded from %s", cfg.DataFile)

	// Session table: Redis when configured, in-memory otherwise
	var sessions port.SessionRepository
	var memSessions *storage.MemorySessionStore
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		sessions = storage.NewRedisSessionStore(rdb, cfg.SessionTTL)
		log.Println("sessions: redis")
	} else {
		memSessions = storage.NewMemorySessionStore(cfg.SessionTTL)
		sessions = memSessions
		log.Println("sessions: in-memory")
	}

	policy := service.NewAccessPolicy(cfg.Sellers, cfg.Resetters)

	// Telegram bot (optional; without a token only the HTTP surface runs)
	var bot *tele.Bot
	if cfg.BotToken != "" {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			log.Fatalf("failed to create bot: %v", err)
		}
	} else {
		log.Println("BOT_TOKEN not set, telegram transport disabled")
	}

	var notifier port.Notifier = notify.NewLogNotifier()
	if bot != nil && cfg.NotifyChatID != 0 {
		notifier = notify.NewTelegramNotifier(bot, cfg.NotifyChatID)
	}

	sales := service.NewSaleService(store, policy, notifier, cfg.LedgerQueueSize)
	dialog := service.NewDialogService(store, sessions, policy, sales)

	// Sale ledger workers (optional)
	var db *sql.DB
	var ledger port.LedgerRepository
	if cfg.MySQLDSN != "" {
		db, err = sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping mysql: %v", err)
		}
		ledger = storage.NewMySQLLedger(db)
		log.Println("sale ledger: mysql")
	}

	var wg sync.WaitGroup
	if ledger != nil {
		for i := 0; i < cfg.LedgerWorkerCount; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				ledgerLoop(id, sales, ledger)
			}(i)
		}
		log.Printf("started %d ledger workers", cfg.LedgerWorkerCount)
	} else {
		// Keep the queue drained so the buffer never fills.
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range sales.Sales() {
			}
		}()
	}

	// HTTP admin surface
	httpHandler := handler.NewHTTPHandler(store)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpHandler.Routes(),
	}
	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	if bot != nil {
		handler.NewTelegramHandler(dialog).Register(bot)
		go func() {
			log.Println("bot started")
			bot.Start()
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	if bot != nil {
		bot.Stop()
		log.Println("bot stopped")
	}

	sales.Close()
	wg.Wait()
	log.Println("workers stopped")

	if err := store.Flush(shutdownCtx); err != nil {
		log.Printf("flush inventory: %v", err)
	}
	if memSessions != nil {
		memSessions.Close()
	}
	if rdb != nil {
		rdb.Close()
	}
	if db != nil {
		db.Close()
	}
	log.Println("state flushed, connections closed")
}

func ledgerLoop(id int, sales *service.SaleService, ledger port.LedgerRepository) {
	for sale := range sales.Sales() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := ledger.SaveSale(ctx, sale); err != nil {
			// The sale is already committed; the ledger is an archive,
			// not a source of truth.
			log.Printf("ledger worker %d: failed to save sale %s: %v", id, sale.ID, err)
		}
		cancel()
	}
}
