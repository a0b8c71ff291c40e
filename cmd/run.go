package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iolobot/iolo/internal/bot"
	"github.com/iolobot/iolo/internal/config"
	"github.com/iolobot/iolo/internal/gemini"
	"github.com/iolobot/iolo/internal/log"
	"github.com/iolobot/iolo/internal/pinecone"
	"github.com/iolobot/iolo/internal/rag"
)

// runBot wires the service handles once at startup and runs the bot until
// the process is signalled. All clients are constructed here and injected;
// nothing in the pipeline or the dispatcher reaches for globals.
func runBot() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := log.New(log.Config{Level: level, JSON: cfg.LogJSON})

	searcher, err := pinecone.New(ctx, pinecone.Config{
		APIKey:     cfg.PineconeAPIKey,
		IndexName:  cfg.IndexName,
		Namespaces: rag.Namespaces,
	}, logger.With("component", "pinecone"))
	if err != nil {
		return fmt.Errorf("connecting to vector index: %w", err)
	}

	generator, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.ModelName,
		Timeout: cfg.GenerateTimeout,
		Rate:    cfg.GenerateRate,
		Burst:   cfg.GenerateBurst,
	}, logger.With("component", "gemini"))
	if err != nil {
		return fmt.Errorf("creating model client: %w", err)
	}

	pipeline := rag.NewPipeline(searcher, generator, logger.With("component", "rag"))

	telegram, err := bot.NewTelegram(cfg.TelegramToken, logger.With("component", "telegram"))
	if err != nil {
		return fmt.Errorf("creating bot session: %w", err)
	}

	dispatcher := bot.NewDispatcher(pipeline, telegram, telegram, logger.With("component", "dispatcher"))

	logger.Info("iolo starting",
		"index", cfg.IndexName,
		"model", cfg.ModelName,
		"namespaces", rag.Namespaces,
	)

	telegram.Run(ctx, dispatcher)

	logger.Info("iolo stopped")
	return nil
}
