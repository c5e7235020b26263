package main

import (
	"context"
	"errors"
	"gmao/internal/accounts"
	"gmao/internal/api"
	"gmao/internal/api/handler/v1handler"
	"gmao/internal/config"
	"gmao/internal/dashboard"
	"gmao/internal/maintenance"
	"gmao/pkg/logger"
	"gmao/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	issuer, err := accounts.NewTokenIssuer(cfg.JWT.PrivateKey)
	if err != nil {
		logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
	}

	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Maintenance: maintenance.New(strg, maintenance.Options{}),
			Dashboard:   dashboard.New(strg, dashboard.Options{}),
			Accounts:    accounts.New(strg, issuer, accounts.NewOptions(cfg)),
		},
		HealthProbe: strg.Ping,
	}, api.NewOptions(cfg))
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
		Short: "Starts API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.Ping(ctx); err != nil {
				logger.Warn(ctx, "database is not reachable yet", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
