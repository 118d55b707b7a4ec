package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/skillforge/internal/logger"
)

type retryItem struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// Publish never fails the caller once the event has been accepted.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	stop     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewResilientPublisher starts the retry loop. deadLetterPath receives events
// whose retries are exhausted.
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	if maxRetries <= 0 {
		maxRetries = RetryMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = RetryInitialDelay
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		stop:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryLoop()
	return p, nil
}

// Publish delivers the event synchronously and queues a retry on failure.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	select {
	case p.queue <- retryItem{event: event, attempts: 1, lastErr: err}:
	default:
		logger.FromContext(ctx).Error(LogMsgRetryQueueFull, "event_type", event.Type)
		if dlErr := p.deadLetter.Write(event, 1, err); dlErr != nil {
			logger.FromContext(ctx).Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
	}
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryLoop() {
	defer p.wg.Done()
	log := logger.FromContext(context.Background())

	for {
		select {
		case <-p.stop:
			return
		case item := <-p.queue:
			p.retry(log, item)
		}
	}
}

func (p *ResilientPublisher) retry(log *slog.Logger, item retryItem) {
	for item.attempts <= p.maxRetries {
		timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, item.attempts))
		select {
		case <-p.stop:
			timer.Stop()
			log.Warn(LogMsgEventDroppedShutdown, "event_type", item.event.Type)
			p.writeDeadLetter(log, item)
			return
		case <-timer.C:
		}

		item.attempts++
		err := p.inner.Publish(context.Background(), item.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempts", item.attempts)
			return
		}
		item.lastErr = err
		log.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempts", item.attempts, "error", err)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempts)
	p.writeDeadLetter(log, item)
}

func (p *ResilientPublisher) writeDeadLetter(log *slog.Logger, item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempts, item.lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry loop. Events still queued are written to the
// dead-letter file so they are not silently lost.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Error(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	log := logger.FromContext(ctx)
	for {
		select {
		case item := <-p.queue:
			log.Warn(LogMsgEventDroppedShutdown, "event_type", item.event.Type)
			p.writeDeadLetter(log, item)
		default:
			return p.deadLetter.Close()
		}
	}
}
