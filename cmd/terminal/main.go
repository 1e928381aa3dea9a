package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/eidetic/internal/common/clock"
	"github.com/KirkDiggler/eidetic/internal/common/uuid"
	"github.com/KirkDiggler/eidetic/internal/config"
	"github.com/KirkDiggler/eidetic/internal/feedback"
	"github.com/KirkDiggler/eidetic/internal/handlers/terminal"
	"github.com/KirkDiggler/eidetic/internal/random"
	"github.com/KirkDiggler/eidetic/internal/repositories/profile"
	gameService "github.com/KirkDiggler/eidetic/internal/services/game"
	"github.com/KirkDiggler/eidetic/internal/services/messaging"
)

const logFile = "eidetic.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "eidetic:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the screen owns stdout, so logs go to a file
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	logger := cfg.NewTextLogger(f)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := profile.NewSQLite(ctx, &profile.SQLiteConfig{Path: cfg.SQLitePath})
	if err != nil {
		return err
	}
	defer repo.Close()

	src := random.New(&random.Config{Seed: cfg.RandomSeed})

	msgSvc, err := messaging.NewService(&messaging.Config{Random: src})
	if err != nil {
		return err
	}

	gameSvc, err := gameService.New(&gameService.Config{
		ProfileRepo:        repo,
		Messaging:          msgSvc,
		Random:             src,
		Clock:              clock.New(),
		UUIDGenerator:      uuid.New(),
		Feedback:           feedback.NewLogSink(logger),
		Logger:             logger,
		MaxPlacementPasses: cfg.MaxPlacementPasses,
	})
	if err != nil {
		return err
	}

	app, err := terminal.New(&terminal.Config{
		GameService: gameSvc,
		ProfileID:   cfg.ProfileID,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	logger.Info("terminal client starting", "profile_id", cfg.ProfileID, "sqlite_path", cfg.SQLitePath)
	return app.Run(ctx)
}
