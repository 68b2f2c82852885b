package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	telegramAdapter "shopping-list-bot/internal/adapter/telegram"
	"shopping-list-bot/internal/config"
	"shopping-list-bot/internal/domain"
	"shopping-list-bot/internal/infra/memory"
	sqliteRepo "shopping-list-bot/internal/infra/sqlite"
	"shopping-list-bot/internal/logging"
	"shopping-list-bot/internal/metrics"
	"shopping-list-bot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatalf("bot init error: %v", err)
	}
	bot.Debug = false
	logger.Info("authorized", "username", bot.Self.UserName)

	store := memory.NewListStore()
	if err := metrics.RegisterTenantGauge(store.Tenants); err != nil {
		log.Fatalf("metrics init error: %v", err)
	}

	var (
		statsRepo  usecase.StatsRepository  = memory.NewStatsRepo()
		tenantRepo domain.TenantRepository = memory.NewTenantRepo()
	)
	if cfg.StatsDSN != "" {
		db, err := sqliteRepo.Open(cfg.StatsDSN)
		if err != nil {
			log.Fatalf("sqlite open error: %v", err)
		}
		defer db.Close()
		sr, err := sqliteRepo.NewStatsRepo(db)
		if err != nil {
			log.Fatalf("stats sqlite init error: %v", err)
		}
		tr, err := sqliteRepo.NewTenantRepo(db)
		if err != nil {
			log.Fatalf("tenants sqlite init error: %v", err)
		}
		statsRepo, tenantRepo = sr, tr
	}
	statsUC := usecase.NewStatsUsecase(statsRepo, tenantRepo)

	dispatcher := usecase.NewDispatcher(usecase.NewExecutor(store), telegramAdapter.NewSender(bot), logger)
	dispatcher.SetStats(statsUC)
	dispatcher.SetTenantRepository(tenantRepo)

	srv := newHTTPServer(cfg.HTTPAddr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
		}
	}()

	handler := telegramAdapter.NewHandler(bot, dispatcher, cfg.AdminSet(), cfg.Workers, logger)
	handler.SetStats(statsUC)
	handler.AllowPrivateChats(cfg.AllowPrivateChats)
	handler.Run(ctx)

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info("stopped")
}

func newHTTPServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", metrics.Handler())
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}
