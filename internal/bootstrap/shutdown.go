package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/skillforge/internal/event"
	"github.com/osse101/skillforge/internal/server"
	"github.com/osse101/skillforge/internal/sse"
	"github.com/osse101/skillforge/internal/tracing"
	"github.com/osse101/skillforge/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	EventHub           *sse.Hub
	Server             *server.Server
	PlaytimeWorker     *worker.PlaytimeWorker
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
	Tracing            tracing.ShutdownFunc
}

// GracefulShutdown stops components in dependency order:
//  1. event streams, then the HTTP server (stop accepting new requests)
//  2. playtime ticker and worker pool (finish queued accruals)
//  3. event publisher (flush retries to the bus or the dead-letter file)
//  4. storage and tracing
//
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// open streams would otherwise hold Server.Stop until ctx expires
	if c.EventHub != nil {
		c.EventHub.Stop()
	}
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.PlaytimeWorker != nil {
		if err := c.PlaytimeWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgPlaytimeWorkerFailed, "error", err)
		}
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	if c.Tracing != nil {
		if err := c.Tracing(ctx); err != nil {
			slog.Error(LogMsgTracingShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
