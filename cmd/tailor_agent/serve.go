package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-tailor/internal/cache"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/server"
	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes job ingestion, preview and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides TAILOR_PORT)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a YAML or JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigFile)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	var svcOpts []tailor.ServiceOption
	checks := []server.Pinger{database}
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = redisClient.Close() }()

		catalog := cache.NewCachedCatalog(database, redisClient.Client, cfg.CatalogCacheTTL, log)
		svcOpts = append(svcOpts, tailor.WithCatalog(catalog))
		checks = append(checks, redisClient)
		log.Info("skill catalog cache enabled", zap.Duration("ttl", cfg.CatalogCacheTTL))
	}

	service := tailor.NewService(database, log, svcOpts...)
	srvOpts := []server.Option{server.WithHealthChecks(checks...)}
	if cfg.Template != "" {
		srvOpts = append(srvOpts, server.WithLaTeXTemplate(cfg.Template))
	}
	srv := server.New(server.Config{Port: cfg.Port}, service, log, srvOpts...)
	return srv.Start()
}
