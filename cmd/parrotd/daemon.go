package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/vmunix/parrot/internal/bot"
	"github.com/vmunix/parrot/internal/config"
	"github.com/vmunix/parrot/internal/reddit"
	"github.com/vmunix/parrot/internal/xref"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runDaemon(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if dir := filepath.Dir(cfg.Store.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	store, err := xref.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	client := reddit.NewClient(reddit.Credentials{
		ClientID:     cfg.Reddit.ClientID,
		ClientSecret: cfg.Reddit.ClientSecret,
		Username:     cfg.Reddit.Username,
		Password:     cfg.Reddit.Password,
	}, reddit.WithUserAgent(cfg.Reddit.UserAgent))

	sup := bot.NewSupervisor(logger)
	for _, pc := range cfg.Pairs {
		pair := bot.Pair{
			Parody:              pc.Parody,
			Source:              pc.Source,
			Quiet:               pc.Quiet,
			ReconcileSource:     pc.ReconcileEnabled(),
			MatchSameAuthor:     pc.MatchSameAuthor,
			SimilarityThreshold: pc.SimilarityThreshold,
			CertaintyThreshold:  pc.CertaintyThreshold,
		}
		stream := func() bot.Streamer { return client.StreamNew(pair.Parody) }
		sup.Add(bot.NewWorker(client, store, pair, stream, logger))
	}
	if cfg.Cleanup.Enabled {
		sup.Add(bot.NewCleanup(client, cfg.Cleanup.Interval, cfg.Cleanup.MinScore, logger))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("parrotd starting", "version", version, "pairs", len(cfg.Pairs), "store", cfg.Store.Path)
	if err := sup.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
