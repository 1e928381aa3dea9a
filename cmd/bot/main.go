package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/eidetic/internal/common/clock"
	"github.com/KirkDiggler/eidetic/internal/common/uuid"
	"github.com/KirkDiggler/eidetic/internal/config"
	"github.com/KirkDiggler/eidetic/internal/feedback"
	"github.com/KirkDiggler/eidetic/internal/handlers/discord"
	"github.com/KirkDiggler/eidetic/internal/random"
	"github.com/KirkDiggler/eidetic/internal/repositories/profile"
	gameService "github.com/KirkDiggler/eidetic/internal/services/game"
	"github.com/KirkDiggler/eidetic/internal/services/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewJSONLogger(os.Stdout)
	slog.SetDefault(logger)

	if err := cfg.ValidateBot(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profileRepo, closeRepo, err := openProfileRepo(ctx, cfg)
	if err != nil {
		logger.Error("failed to open profile repository", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	src := random.New(&random.Config{Seed: cfg.RandomSeed})

	msgSvc, err := messaging.NewService(&messaging.Config{Random: src})
	if err != nil {
		logger.Error("failed to create messaging service", "error", err)
		os.Exit(1)
	}

	// the gateway state lives in the bot, which needs the game service first
	var bot *discord.Bot
	speechReady := func() bool { return bot != nil && bot.SpeechReady() }

	gameSvc, err := gameService.New(&gameService.Config{
		ProfileRepo:        profileRepo,
		Messaging:          msgSvc,
		Random:             src,
		Clock:              clock.New(),
		UUIDGenerator:      uuid.New(),
		Feedback:           feedback.NewLogSink(logger),
		SpeechReady:        speechReady,
		Logger:             logger,
		MaxPlacementPasses: cfg.MaxPlacementPasses,
	})
	if err != nil {
		logger.Error("failed to create game service", "error", err)
		os.Exit(1)
	}

	bot, err = discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		GameService:   gameSvc,
		Messaging:     msgSvc,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create Discord bot", "error", err)
		os.Exit(1)
	}

	if err := bot.Start(); err != nil {
		logger.Error("failed to start Discord bot", "error", err)
		os.Exit(1)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", "error", err)
	}

	logger.Info("bot has been shut down")
}

// openProfileRepo opens the backend STORE names
func openProfileRepo(ctx context.Context, cfg *config.Config) (profile.Repository, func(), error) {
	if cfg.Store == config.StoreSQLite {
		repo, err := profile.NewSQLite(ctx, &profile.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	repo, err := profile.NewRedis(&profile.Config{RedisClient: redisClient})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, err
	}
	return repo, func() { _ = redisClient.Close() }, nil
}
