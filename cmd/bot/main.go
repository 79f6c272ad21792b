package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/loadout-planner/internal/config"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/handlers/discord"
	"github.com/KirkDiggler/loadout-planner/internal/repositories/builds"
	"github.com/KirkDiggler/loadout-planner/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateDiscord(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found")
	}
	logger.Info("starting bot",
		zap.String("app_id", cfg.Discord.AppID),
		zap.String("guild_id", cfg.Discord.GuildID))

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	logger.Info("loaded catalog", zap.Int("sets", cat.Len()))

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal("failed to create Discord session", zap.Error(err))
	}

	providerConfig := &services.ProviderConfig{
		Catalog: cat,
		Logger:  logger,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if cfg.Redis.URL != "" {
		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			logger.Warn("failed to parse Redis URL, falling back to in-memory builds", zap.Error(parseErr))
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				logger.Warn("failed to connect to Redis, falling back to in-memory builds", zap.Error(pingErr))
				_ = redisClient.Close()
				redisClient = nil
			} else {
				providerConfig.BuildRepository = builds.NewRedis(redisClient, cfg.BuildTTL)
				logger.Info("using Redis for build persistence", zap.Duration("ttl", cfg.BuildTTL))
			}
		}
	} else {
		logger.Info("no REDIS_URL found, using in-memory builds")
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		Logger:          logger.Named("discord"),
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		logger.Error("failed to open Discord connection", zap.Error(err))
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			logger.Warn("failed to close Discord connection", zap.Error(clientErr))
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		logger.Error("failed to register commands", zap.Error(err))
		return
	}

	logger.Info("bot is now running, press CTRL-C to exit")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("shutting down")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("error closing Redis connection", zap.Error(err))
		}
	}
}
