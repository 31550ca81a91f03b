package cmd

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	otelShutdown, err := server.InitObservability(ctx, cfg.Observability, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()
	srv.SetRouter(server.SetupRouter(srv))

	server.StartPprofServer(cfg.PprofAddr, logger)

	httpServer := srv.HTTPServer()
	done := make(chan struct{})
	go server.GracefulShutdown(ctx, httpServer, srv, done)

	logger.Info("Server starting",
		zap.String("port", cfg.ServerPort),
		zap.String("api_base_url", cfg.API.BaseURL))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", zap.Error(err))
		return err
	}

	<-done
	logger.Info("Graceful shutdown complete")
	return nil
}
