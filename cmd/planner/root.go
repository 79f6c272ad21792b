package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/KirkDiggler/loadout-planner/internal/config"
	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/repositories/builds"
	"github.com/KirkDiggler/loadout-planner/internal/services"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	catalogPath string
	buildPath   string
	buildID     string
	logLevel    string
	asJSON      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Set bonus planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file (default: $CATALOG_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.buildPath, "build", "", "build JSON file")
	rootCmd.PersistentFlags().StringVar(&opts.buildID, "build-id", "", "stored build ID, read from $REDIS_URL")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (default: $LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON")

	rootCmd.AddCommand(newEvaluateCmd(opts))
	rootCmd.AddCommand(newCompatibleCmd(opts))
	rootCmd.AddCommand(newTypesCmd(opts))

	return rootCmd
}

// session is everything a subcommand needs to run against one build
type session struct {
	planner planner.Service
	buildID string
	logger  *zap.Logger
	close   func()
}

func (o *options) open(ctx context.Context) (*session, error) {
	if (o.buildPath == "") == (o.buildID == "") {
		return nil, fmt.Errorf("exactly one of --build or --build-id is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.catalogPath == "" {
		o.catalogPath = cfg.CatalogPath
	}
	if o.logLevel == "" {
		o.logLevel = cfg.LogLevel
	}

	logger, err := config.NewLogger(o.logLevel)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(o.catalogPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", zap.String("path", o.catalogPath), zap.Int("sets", cat.Len()))

	s := &session{logger: logger, close: func() { _ = logger.Sync() }}
	providerConfig := &services.ProviderConfig{Catalog: cat, Logger: logger}

	if o.buildID != "" {
		if cfg.Redis.URL == "" {
			return nil, fmt.Errorf("--build-id needs REDIS_URL")
		}
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(redisOpts)
		s.close = func() {
			_ = client.Close()
			_ = logger.Sync()
		}
		providerConfig.BuildRepository = builds.NewRedis(client, cfg.BuildTTL)
		s.planner = services.NewProvider(providerConfig).PlannerService
		s.buildID = o.buildID
		return s, nil
	}

	b, err := readBuild(o.buildPath)
	if err != nil {
		return nil, err
	}
	s.planner = services.NewProvider(providerConfig).PlannerService
	created, err := s.planner.CreateBuild(ctx, b)
	if err != nil {
		return nil, err
	}
	s.buildID = created.ID
	return s, nil
}

func readBuild(path string) (*build.Build, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build %s: %w", path, err)
	}

	var b build.Build
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("failed to parse build %s: %w", path, err)
	}
	if b.OwnerID == "" {
		b.OwnerID = "local"
	}
	if b.Name == "" {
		b.Name = path
	}
	return &b, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
