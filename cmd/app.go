package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/urfave/cli/v2"

	"reliefhub/internal/components"
	"reliefhub/internal/config"
	"reliefhub/internal/seed"
	"reliefhub/internal/storage/postgres"
)

func NewApp() *cli.App {
	return &cli.App{
		Name:  "reliefhub",
		Usage: "Disaster relief coordination API",
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			seedCommand,
		},
	}
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP API and its background workers",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "migrate",
			Aliases: []string{"m"},
			Usage:   "Apply the database schema before serving",
			EnvVars: []string{"AUTO_MIGRATE"},
		},
	},
	Action: func(c *cli.Context) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		return serve(c.Context, cfg, logger, c.Bool("migrate"))
	},
}

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Apply the database schema",
	Action: func(c *cli.Context) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		pg, err := postgres.NewPostgres(c.Context, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pg.Close()

		if err := pg.Migrate(c.Context); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		logger.Info("schema applied")
		return nil
	},
}

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with demo users, resources and requests",
	Action: func(c *cli.Context) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		pg, err := postgres.NewPostgres(c.Context, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pg.Close()

		if err := pg.Migrate(c.Context); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}

		res, err := seed.Run(c.Context, seed.Stores{
			Users:         pg.Users,
			Resources:     pg.Resources,
			Requests:      pg.Requests,
			Notifications: pg.Notifications,
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}

		logger.Info("database seeded",
			slog.Int("users", res.Users),
			slog.Int("resources", res.Resources),
			slog.Int("requests", res.Requests),
			slog.Int("notifications", res.Notifications),
			slog.String("password", seed.DefaultPassword))
		return nil
	},
}

func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		components.SetupLogger("local").Error("load config failed", "err", err)
		return nil, nil, err
	}
	return cfg, components.SetupLogger(cfg.Env), nil
}

func serve(parent context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) error {
	appCtx, cancel := context.WithCancel(parent)
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	if migrate {
		if err := comps.Postgres.Migrate(appCtx); err != nil {
			comps.ShutdownAll()
			return fmt.Errorf("failed to migrate: %w", err)
		}
		logger.Info("schema applied")
	}

	ctx, stop := context.WithCancel(appCtx)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	if comps.Dispatcher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.Dispatcher.Run(ctx)
		}()
	}

	if comps.Warmer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.Warmer.Run(ctx)
		}()
	}

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shutting down the servers")

	return nil
}
