package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/logger"
	"github.com/osse101/skillforge/internal/metrics"
)

// PlaytimeAccruer is the slice of the profile manager the playtime worker needs.
type PlaytimeAccruer interface {
	ActiveOwners() []uuid.UUID
	AccruePlaytime(ctx context.Context, ownerID uuid.UUID, elapsed time.Duration) error
}

// PlaytimeWorker fans out one accrual job per online owner on every tick.
type PlaytimeWorker struct {
	accruer  PlaytimeAccruer
	pool     *Pool
	interval time.Duration

	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewPlaytimeWorker creates a worker that ticks every interval.
func NewPlaytimeWorker(accruer PlaytimeAccruer, pool *Pool, interval time.Duration) *PlaytimeWorker {
	return &PlaytimeWorker{
		accruer:  accruer,
		pool:     pool,
		interval: interval,
		shutdown: make(chan struct{}),
	}
}

// Start launches the ticker loop.
func (w *PlaytimeWorker) Start(ctx context.Context) {
	logger.FromContext(ctx).Info(LogMsgPlaytimeWorkerStarted, "interval", w.interval)
	w.wg.Add(1)
	go w.run()
}

func (w *PlaytimeWorker) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			w.Tick(now.Sub(last))
			last = now
		case <-w.shutdown:
			return
		}
	}
}

// Tick queues an accrual of elapsed for every active owner. A full queue drops
// that owner's tick rather than stalling the others.
func (w *PlaytimeWorker) Tick(elapsed time.Duration) {
	for _, owner := range w.accruer.ActiveOwners() {
		job := &playtimeJob{accruer: w.accruer, ownerID: owner, elapsed: elapsed}
		if !w.pool.TryEnqueue(job) {
			metrics.PlaytimeTicks.WithLabelValues(metrics.ResultDropped).Inc()
			logger.Warn(LogMsgPlaytimeTickDropped, "owner_id", owner)
		}
	}
}

// Shutdown stops the ticker and waits for the loop to exit.
func (w *PlaytimeWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlaytimeShutdown)
	w.once.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgPlaytimeShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgPlaytimeShutdownTimeout)
		return ctx.Err()
	}
}

type playtimeJob struct {
	accruer PlaytimeAccruer
	ownerID uuid.UUID
	elapsed time.Duration
}

// Process accrues playtime. An owner who went offline between the tick and
// the job is not an error.
func (j *playtimeJob) Process(ctx context.Context) error {
	err := j.accruer.AccruePlaytime(ctx, j.ownerID, j.elapsed)
	switch {
	case err == nil, errors.Is(err, domain.ErrNoActiveProfile):
		metrics.PlaytimeTicks.WithLabelValues(metrics.ResultOK).Inc()
		return nil
	default:
		metrics.PlaytimeTicks.WithLabelValues(metrics.ResultError).Inc()
		return err
	}
}
