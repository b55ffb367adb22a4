package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"matchday/internal/app"
	"matchday/internal/config"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command, which runs the web server.
func NewRootCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "matchday",
		Short: "Pick a team and follow its matches",
		Long: `matchday serves a small web app where users register, log in,
pick a team and see the matches that team plays in.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			return serve(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.Flags().StringVar(&port, "port", "", "HTTP port, overrides SERVER_PORT")

	cmd.AddCommand(NewMigrateCmd())

	return cmd
}

func serve(cfg *config.Config) error {
	log := setupLogger(cfg.Env)

	application := app.MustNew(log, cfg)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errCh <- fmt.Errorf("server stopped: %v", r)
			}
			close(errCh)
		}()
		application.MustRun()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("received signal", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("application failed", slog.String("error", err.Error()))
			application.GracefulShutdown()
			return err
		}
	}

	application.GracefulShutdown()
	log.Info("application stopped")

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
