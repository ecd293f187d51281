package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"oakbot/auth"
	"oakbot/bot"
	"oakbot/dex"
	"oakbot/internal"
	"oakbot/moderation"
	"oakbot/observability"
	"oakbot/repositories"
	"oakbot/services"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// main stays a thin wrapper so every defer in run() executes
	// before the process exits.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Record store (BadgerDB)
	options := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("record store opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Reference dataset & suggestion index
	registry, err := dex.Load(config.DexFilepath, config.SpriteDir)
	if err != nil {
		return exitRuntime, fmt.Errorf("loading reference dataset: %w", err)
	}
	logger.Info("Reference dataset loaded", "entries", registry.Len())

	suggester, err := dex.NewSuggester(registry)
	if err != nil {
		return exitRuntime, fmt.Errorf("building suggestion index: %w", err)
	}
	defer func() {
		logger.Info("Closing suggestion index...")
		_ = suggester.Close()
	}()

	// 4. Screening, observability, services
	screener, err := moderation.LoadScreener(config.CensoredWordsFile)
	if err != nil {
		return exitRuntime, fmt.Errorf("loading censored words: %w", err)
	}

	collector, err := observability.NewCollector()
	if err != nil {
		return exitRuntime, fmt.Errorf("starting process collector: %w", err)
	}

	repository := repositories.NewSetRepository(db, logger)
	sets := services.NewSetService(repository, registry, suggester, screener, logger, config.SuggestionCount)
	sessions := auth.NewSessions(config.AuthSecret, config.AuthTokenDuration)
	admin := services.NewAdminService(repository, registry, sessions, config.AdminPasswordHash, collector, logger)

	// 5. Telegram client & update loop
	api, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		return exitRuntime, fmt.Errorf("telegram client: %w", err)
	}
	api.Debug = config.DebugMode
	logger.Info("Authorized on Telegram", "account", api.Self.UserName)

	oak := bot.New(api, sets, admin, logger, bot.Options{
		PollTimeout:     config.PollTimeout,
		RateLimitBurst:  config.RateLimitBurst,
		RateLimitWindow: config.RateLimitWindow,
	})
	if err := oak.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return exitRuntime, err
	}

	logger.Info("Shutdown complete")
	return exitOK, nil
}
