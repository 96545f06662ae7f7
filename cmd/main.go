package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"summarystore/internal/config"
	"summarystore/internal/store"
	"summarystore/internal/summary"
	"syscall"
	"time"
)

func main() {
	cfg := config.LoadConfig()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !run(ctx, cfg, log) {
		stop()
		os.Exit(1)
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) bool {
	repo, closeRepo, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to open repository",
			"error", err,
			"backend", cfg.Backend)

		return false
	}
	defer func() {
		if err = closeRepo(); err != nil {
			log.ErrorContext(ctx, "Failed to close repository",
				"error", err,
				"backend", cfg.Backend)
		}
	}()

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	res := <-summary.GetSummariesAsync(fetchCtx, repo)
	if res.Err != nil {
		log.ErrorContext(ctx, "Failed to get summaries",
			"error", res.Err,
			"backend", cfg.Backend,
			"fetchTimeout", cfg.FetchTimeout.String())

		return false
	}

	names := make([]string, 0, len(res.Summaries))
	for _, s := range res.Summaries {
		names = append(names, s.Name)
	}

	log.InfoContext(ctx, "Summaries are available",
		"backend", cfg.Backend,
		"count", len(res.Summaries),
		"names", names)

	return true
}
