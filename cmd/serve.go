package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"petregistry/internal/api"
	"petregistry/internal/api/handler/v1handler"
	"petregistry/internal/auth"
	"petregistry/internal/config"
	"petregistry/internal/registry"
	"petregistry/pkg/logger"
	"petregistry/pkg/metrics"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			gateway, err := auth.New(auth.Options{Secret: cfg.JWT.Secret, TTL: cfg.JWT.TTL})
			if err != nil {
				logger.Fatal(ctx, "could not create auth gateway", zap.Error(err))
			}

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			svc, err := registry.New(registry.Deps{
				Storage: strg,
				Tokens:  gateway,
				Meter:   mp.Meter("petregistry/internal/registry"),
			}, registry.Options{
				OperationTimeout: cfg.Registry.OperationTimeout,
				BcryptCost:       cfg.Password.BcryptCost,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create registry", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:   v1handler.Deps{Registry: svc, Auth: gateway},
				Meter:  mp.Meter("petregistry/internal/api"),
				Health: strg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
