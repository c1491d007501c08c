package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/finance-tracker/internal/clients/api"
	"max.ks1230/finance-tracker/internal/clients/tg"
	"max.ks1230/finance-tracker/internal/config"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/messages"
	"max.ks1230/finance-tracker/internal/model/reconcile"
	"max.ks1230/finance-tracker/internal/model/reports"
	"max.ks1230/finance-tracker/internal/model/store"
	"max.ks1230/finance-tracker/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

var cli struct {
	Config string `help:"Path to the YAML config." default:"data/config.yaml"`
}

func main() {
	kong.Parse(&cli)
	defer logger.Sync()

	logger.Info("Bot init - start")

	conf, err := config.New(cli.Config)
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	client, err := tg.New(conf.Telegram(), conf.App())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	apiClient := api.New(conf.API(), conf.App().Timezone())
	sessions := store.NewRegistry()
	reportGenerator := reports.NewGenerator(conf.App(), apiClient)
	msgService := messages.NewService(client, apiClient, reportGenerator, sessions, conf.App())
	puller := reconcile.NewPuller(apiClient, sessions, conf.App())

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serveMetrics(ctx, conf.Metrics().Addr())
	})
	group.Go(func() error {
		puller.Pull(ctx)
		return nil
	})
	group.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		return nil
	})

	if err = group.Wait(); err != nil {
		logger.Error("bot stopped", zap.Error(err))
	}
}

func serveMetrics(ctx context.Context, addr string) error {
	if addr == "" {
		logger.Info("Metrics server is off")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown", zap.Error(err))
		}
	}()

	logger.Info("Starting metrics server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
