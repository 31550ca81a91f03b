package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/pkg/config"
	"github.com/FACorreiaa/population-dashboard/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "population-dashboard",
	Short: "Admin and manager dashboard for the inventory backend",
	Long: `population-dashboard serves the server-rendered admin and manager
dashboards in front of the remote inventory API. Running it without a
subcommand starts the web server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd, checkCmd)
}

// bootstrap loads .env, the configuration and the process logger shared by
// every subcommand.
func bootstrap() (*config.Config, *zap.Logger, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(level, zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return nil, nil, err
	}
	return cfg, logger.Log, nil
}
