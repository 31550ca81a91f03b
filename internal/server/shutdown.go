package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// GracefulShutdown waits for ctx to end, drains in-flight requests and then
// releases every session store. done is closed when teardown has finished.
func GracefulShutdown(ctx context.Context, srv *http.Server, s *Server, done chan<- struct{}) {
	defer close(done)

	<-ctx.Done()
	s.logger.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
	}

	sessions := s.registry.Len()
	s.Close()
	s.logger.Info("Server exiting", zap.Int("sessions_released", sessions))
}
