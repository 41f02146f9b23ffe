package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"meetbook/backend/internal/config"
	meetbookv1 "meetbook/backend/internal/gen/proto/meetbook/v1"
	"meetbook/backend/internal/reconcile"
	grpcTransport "meetbook/backend/internal/transport/grpc"
	httpTransport "meetbook/backend/internal/transport/http"
)

func newServeCmd() *cobra.Command {
	var (
		migrateUp     bool
		withReconcile bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC and HTTP APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			log.Info("starting",
				slog.String("grpc_addr", cfg.GRPCAddr),
				slog.String("http_addr", cfg.HTTPAddr),
				slog.String("store", cfg.StoreDriver),
				slog.String("calendar", cfg.Calendar.Provider),
				slog.String("log_level", cfg.LogLevel),
			)

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, cfg, log, migrateUp)
			if err != nil {
				return err
			}
			defer a.Close(log)

			return serve(ctx, cfg, log, a, withReconcile)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	cmd.Flags().BoolVar(&withReconcile, "reconcile", true, "run the reconciler loop in-process")
	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"
	return cmd
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger, a *app, withReconcile bool) error {
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcTransport.DefaultTimeoutInterceptor(cfg.GRPCRequestTimeout)),
	)
	meetbookv1.RegisterMeetingsServiceServer(grpcServer, grpcTransport.NewMeetingsServer(a.meetings, log))

	limit := rateLimiter(ctx, cfg, log, a)
	var handlerOpts []httpTransport.HandlerOption
	if a.ready != nil {
		handlerOpts = append(handlerOpts, httpTransport.WithReadiness(a.ready))
	}
	e := httpTransport.NewServer(httpTransport.NewHandler(a.meetings, a.intake, log, handlerOpts...), limit)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Error("grpc listen failed", slog.Any("err", err), slog.String("grpc_addr", cfg.GRPCAddr))
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info("grpc server started", slog.String("grpc_addr", cfg.GRPCAddr))
	log.Info("http server started", slog.String("http_addr", cfg.HTTPAddr))

	if withReconcile {
		r := &reconcile.Reconciler{
			Sweeper:  a.meetings,
			Interval: cfg.Reconcile.Interval,
			Grace:    cfg.Reconcile.Grace,
			Batch:    cfg.Reconcile.Batch,
			Logger:   log.With(slog.String("component", "reconcile")),
		}
		go func() { _ = r.Run(ctx) }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error("server stopped with error", slog.Any("err", err))
			runErr = err
		}
	}

	shutdownHTTP(log, httpServer, cfg.ShutdownTimeout)
	shutdown(log, grpcServer, cfg.ShutdownTimeout)
	return runErr
}

// rateLimiter returns nil when limiting is off or redis is unreachable.
func rateLimiter(ctx context.Context, cfg config.Config, log *slog.Logger, a *app) echo.MiddlewareFunc {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unavailable; rate limiting disabled", slog.Any("err", err), slog.String("redis_addr", cfg.RedisAddr))
		_ = rdb.Close()
		return nil
	}
	a.closers = append(a.closers, rdb.Close)
	return httpTransport.RateLimit(httpTransport.RateLimitConfig{
		Enabled:        true,
		Capacity:       cfg.RateLimit.Capacity,
		RefillTokens:   1,
		RefillInterval: cfg.RateLimit.RefillInterval,
	}, rdb, log)
}

func shutdown(log *slog.Logger, s *grpc.Server, timeout time.Duration) {
	log.Info("shutting down grpc server", slog.Duration("timeout", timeout))

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		log.Info("grpc server stopped")
	case <-timer.C:
		log.Warn("grpc graceful shutdown timed out; forcing stop")
		s.Stop()
	}
}

func shutdownHTTP(log *slog.Logger, s *http.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Warn("http graceful shutdown failed; closing", slog.Any("err", err))
		_ = s.Close()
		return
	}
	log.Info("http server stopped")
}
