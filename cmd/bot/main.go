package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solgate/config"
	httpHandler "solgate/internal/adapter/http/handler"
	solanaAdapter "solgate/internal/adapter/solana"
	pgStorage "solgate/internal/adapter/storage/postgres"
	redisStorage "solgate/internal/adapter/storage/redis"
	"solgate/internal/adapter/telegram"
	"solgate/internal/core/ports"
	"solgate/internal/service"
	"solgate/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Int64("group_chat_id", cfg.Telegram.GroupChatID).
		Uint64("required_lamports", cfg.Payment.RequiredLamports).
		Msg("Starting solgate")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Telegram client
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Telegram")
	}
	log.Info().Str("bot", bot.Self.UserName).Msg("Telegram bot authorized")

	// Adapters
	walletRepo := pgStorage.NewWalletRepo(pool)
	checkGate := redisStorage.NewCheckGateStore(rdb)
	oracle := solanaAdapter.NewOracle(cfg.Solana.RPCEndpoint, cfg.Solana.Commitment)
	provisioner := solanaAdapter.NewProvisioner()
	issuer := telegram.NewIssuer(bot, cfg.Telegram.GroupChatID)

	// Core services
	vault, err := service.NewSecretboxVault(cfg.Vault.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize secret vault")
	}
	accessSvc := service.NewAccessService(
		provisioner,
		walletRepo,
		oracle,
		issuer,
		vault,
		cfg.Payment.RequiredLamports,
		cfg.Telegram.InviteTTL,
		logger.Component(log, "access"),
	)

	// Request router
	router := telegram.NewRouter(
		bot,
		accessSvc,
		checkGate,
		cfg.Payment.CheckCooldown,
		logger.Component(log, "router"),
	)

	// HTTP ingress: /health always; /webhook only when enabled.
	var dispatcher httpHandler.UpdateDispatcher
	if cfg.Server.WebhookEnabled {
		dispatcher = router
	}
	engine := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Dispatcher: dispatcher,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		Logger: logger.Component(log, "http"),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	go func() {
		log.Info().Str("addr", addr).Bool("webhook", cfg.Server.WebhookEnabled).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Long polling unless the webhook ingress carries the updates.
	if !cfg.Server.WebhookEnabled {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 30
		updates := bot.GetUpdatesChan(u)
		go router.Listen(ctx, updates)
		log.Info().Msg("Long polling for Telegram updates")
	}

	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	bot.StopReceivingUpdates()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Exited")
}
