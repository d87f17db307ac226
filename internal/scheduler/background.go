package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/catherinevee/sensiscan/internal/logger"
)

// heartbeatInterval is the background scheduler's fixed tick, spec.md §4.5.
const heartbeatInterval = 1 * time.Minute

// Heartbeater is the subset of *controlplane.Client the background
// scheduler needs to publish liveness.
type Heartbeater interface {
	Heartbeat(ctx context.Context, scannerID string) error
}

// BackgroundScheduler ticks every minute, publishing a liveness heartbeat
// PATCH for this agent's scanner instance id (spec.md §4.5).
type BackgroundScheduler struct {
	cp        Heartbeater
	scannerID string
	interval  time.Duration
	log       logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBackground constructs a BackgroundScheduler for scannerID.
func NewBackground(cp Heartbeater, scannerID string) *BackgroundScheduler {
	return &BackgroundScheduler{cp: cp, scannerID: scannerID, interval: heartbeatInterval, log: logger.New("scheduler")}
}

// Start begins the heartbeat loop. A failed heartbeat is logged and
// retried on the next tick; it never stops the loop, since a transient
// control-plane outage should not make the agent consider itself dead.
func (b *BackgroundScheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	b.mu.Lock()
	b.cancel = cancel
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.loop(ctx)
	}()
}

// Stop cancels the heartbeat loop and waits for its current tick (if any)
// to finish.
func (b *BackgroundScheduler) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	b.wg.Wait()
}

func (b *BackgroundScheduler) loop(ctx context.Context) {
	b.beat(ctx)
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.beat(ctx)
		}
	}
}

func (b *BackgroundScheduler) beat(ctx context.Context) {
	if err := b.cp.Heartbeat(ctx, b.scannerID); err != nil {
		b.log.Warn("heartbeat failed", logger.Error(err))
	}
}
