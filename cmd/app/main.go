package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/skillforge/internal/bootstrap"
	"github.com/osse101/skillforge/internal/config"
	"github.com/osse101/skillforge/internal/profile"
	"github.com/osse101/skillforge/internal/server"
	"github.com/osse101/skillforge/internal/tracing"
	"github.com/osse101/skillforge/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("skillforge exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.ServiceName, cfg.Version, cfg.OTelEndpoint)
	if err != nil {
		return err
	}

	trees, rewards, err := bootstrap.LoadCatalogs(cfg)
	if err != nil {
		return err
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}
	bootstrap.RegisterEventHandlers(bus)
	hub := bootstrap.InitializeEventStream(bus)

	manager := profile.NewManager(storage.Repository, trees, rewards, publisher)

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	playtime := worker.NewPlaytimeWorker(manager, pool, cfg.PlaytimeTick)
	playtime.Start(ctx)

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
		RateLimit:       cfg.RateLimit,
		ServiceName:     cfg.ServiceName,
		Readiness:       storage.Readiness,
		Events:          hub,
	}, manager)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		EventHub:           hub,
		Server:             srv,
		PlaytimeWorker:     playtime,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
		Storage:            storage,
		Tracing:            shutdownTracing,
	})
	return err
}
