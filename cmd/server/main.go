package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/partner-profile-service/internal/config"
	"github.com/light-bringer/partner-profile-service/internal/pkg/logging"
	"github.com/light-bringer/partner-profile-service/internal/services"
	"github.com/light-bringer/partner-profile-service/internal/transport/grpc/profile"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration; PPS_CONFIG_FILE points at an optional YAML file
	cfg, err := config.Load(os.Getenv("PPS_CONFIG_FILE"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting partner profile service",
		zap.String("task_api", cfg.TaskAPI.BaseURL),
		zap.Bool("history_enabled", cfg.Spanner.HistoryEnabled),
		zap.String("spanner_database", cfg.Spanner.Database),
		zap.String("save_strategy", cfg.Save.Strategy),
		zap.String("grpc_port", cfg.GRPC.Port),
		zap.String("http_port", cfg.HTTP.Port))

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Idle session sweeper
	go serviceOpts.Registry.Run(ctx, cfg.Sessions.SweepInterval)

	// 4. gRPC server with reflection for grpcurl
	grpcServer := grpc.NewServer()
	profile.RegisterSessionServiceServer(grpcServer, serviceOpts.SessionHandler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPC.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// 5. HTTP server: history, events, metrics, health
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           serviceOpts.HTTPHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	<-ctx.Done()
	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	grpcServer.GracefulStop()

	return nil
}
