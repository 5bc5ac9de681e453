package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/frogfen/internal/api"
	"github.com/mcoot/frogfen/internal/factory"
)

func main() {
	if err := newServerCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newServerCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "frogfen-server",
		Short:        "Serve the FrogFen JSON API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := factory.NewViper(configFile)
			if err != nil {
				return err
			}
			if err := v.BindPFlag("server.port", cmd.Flags().Lookup("port")); err != nil {
				return err
			}
			if err := v.BindPFlag("storage.type", cmd.Flags().Lookup("storage")); err != nil {
				return err
			}

			settings, err := factory.LoadConfig(v)
			if err != nil {
				return err
			}

			logger, err := factory.NewLogger(os.Stdout, settings.LogLevel, settings.LogFormat)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			settings.App.Logger = logger

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, settings, logger)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", os.Getenv("FROGFEN_CONFIG"), "Config file (yaml, json or toml)")
	cmd.Flags().Int("port", api.DefaultServerConfig().Port, "Listen port, 0 for any free port (env: FROGFEN_SERVER_PORT)")
	cmd.Flags().String("storage", factory.StorageTypeMemory, "Storage backend: memory or redis (env: FROGFEN_STORAGE_TYPE)")

	return cmd
}

func run(ctx context.Context, settings factory.Settings, logger *slog.Logger) error {
	app, err := factory.New(settings.App)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}
	defer func() { _ = app.Close() }()

	// A dictionary cached in storage by an earlier run is the fallback
	if err := app.DictionaryService.LoadFromFile(ctx, settings.App.DictionaryPath); err != nil {
		logger.Warn("could not load dictionary file", slog.String("error", err.Error()))
		if err := app.DictionaryService.LoadFromStorage(ctx); err != nil {
			logger.Warn("could not load dictionary from storage", slog.String("error", err.Error()))
		}
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		GameController:    app.GameController,
		DictionaryService: app.DictionaryService,
	})
	server := api.NewServer(router, settings.Server, logger)
	if err := server.Listen(); err != nil {
		logger.Error("failed to bind", slog.String("error", err.Error()))
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	})

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", settings.App.StorageType),
	)

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("server stopped")
	return nil
}
