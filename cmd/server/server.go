package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-toolkit/core"

	skilltreesv1alpha1 "github.com/KirkDiggler/rpg-skilltrees/gen/go/skilltrees/v1alpha1"
	"github.com/KirkDiggler/rpg-skilltrees/internal/events"
	"github.com/KirkDiggler/rpg-skilltrees/internal/handlers/skilltrees/v1alpha1"
	"github.com/KirkDiggler/rpg-skilltrees/internal/logger"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the skill tree gRPC server. Settings come from the environment
(PORT, ENVIRONMENT, LOG_LEVEL, REDIS_ADDR, CATALOG_PATH, SAVE_TTL); flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port")
	addBackendFlags(serverCmd)
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.Setup(cfg, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	events.Subscribe(deps.bus, 100, func(ctx context.Context, eventID int, source core.Entity) error {
		attrs := []any{"event_id", eventID}
		if source != nil {
			attrs = append(attrs, "character_id", source.GetID())
		}
		log.InfoContext(ctx, "scripted event queued", attrs...)
		return nil
	})

	progressionHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ProgressionService: deps.progression,
	})
	if err != nil {
		return fmt.Errorf("failed to create progression handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		log.ErrorContext(ctx, "panic in handler", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(log)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(log)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	skilltreesv1alpha1.RegisterProgressionServiceServer(srv, progressionHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(skilltreesv1alpha1.ProgressionService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Info("gRPC server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the grpc-middleware logger. The two level
// scales line up.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}
