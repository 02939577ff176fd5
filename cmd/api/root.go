package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pageza/diet-recipe/backend/config"
	"github.com/pageza/diet-recipe/backend/internal/logging"
	"github.com/pageza/diet-recipe/backend/internal/server"
)

const name = "diet-recipe"

// overridden during build with ldflags
var version = "dev"

type serveOptions struct {
	host    string
	port    string
	envFile string
}

func newRootCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Serve dinner recipes generated for a dietary preference",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "", "address to bind (overrides SERVER_HOST)")
	cmd.Flags().StringVar(&opts.port, "port", "", "port to listen on (overrides SERVER_PORT)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "optional env file loaded before reading configuration")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, version)
		},
	}
}

func loadConfig(opts *serveOptions) (*config.Config, error) {
	cfg, err := config.ReadConfig(opts.envFile)
	if err != nil {
		return nil, err
	}
	if opts.host != "" {
		cfg.ServerHost = opts.host
	}
	if opts.port != "" {
		cfg.ServerPort = opts.port
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, opts *serveOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return err
	}

	logging.SetDefaultStructuredLogger(name, version, cfg.LogLevel)
	gin.SetMode(cfg.Env.GinMode())

	srv := server.New(cfg, nil)
	if err := srv.Start(ctx); err != nil {
		slog.Error("server error", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
