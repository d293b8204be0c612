package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Refreshable is anything the refresher can re-fetch
type Refreshable interface {
	Refresh(ctx context.Context) error
}

// Refresher re-fetches a page on a fixed interval until stopped
type Refresher struct {
	target   Refreshable
	interval time.Duration
	logger   *slog.Logger
	onTick   func(err error)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// RefresherOption configures a Refresher
type RefresherOption func(*Refresher)

// WithOnRefresh registers a callback run after every refresh attempt
func WithOnRefresh(fn func(err error)) RefresherOption {
	return func(r *Refresher) {
		r.onTick = fn
	}
}

// NewRefresher creates a stopped refresher
func NewRefresher(target Refreshable, interval time.Duration, logger *slog.Logger, opts ...RefresherOption) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Refresher{
		target:   target,
		interval: interval,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the refresh loop. It is a no-op when already running. The
// loop ends on Stop or when ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.loop(loopCtx, r.done)
}

// Stop ends the refresh loop and waits for it to exit
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (r *Refresher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := r.target.Refresh(ctx)
			if err != nil && ctx.Err() == nil {
				r.logger.WarnContext(ctx, "periodic refresh failed", "error", err)
			}
			if r.onTick != nil {
				r.onTick(err)
			}
		}
	}
}
