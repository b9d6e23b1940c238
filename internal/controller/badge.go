package controller

import (
	"context"
	"sync"
	"time"

	"backoffice/internal/utils"
)

// Badge maintains the navigation counter (pending orders) on its own
// 30-second cycle. It owns its state entirely; it never touches a list
// controller and a list controller never touches it.
type Badge struct {
	fetch  func(ctx context.Context) (int, error)
	period time.Duration

	mu     sync.Mutex
	count  int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewBadge(fetch func(ctx context.Context) (int, error), period time.Duration) *Badge {
	if period <= 0 {
		period = 30 * time.Second
	}
	return &Badge{fetch: fetch, period: period}
}

// Start refreshes immediately, then on every tick until Stop or context
// cancellation. Calling Start on a running badge is a no-op.
func (b *Badge) Start(ctx context.Context) {
	b.mu.Lock()
	if b.cancel != nil {
		b.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	done := make(chan struct{})
	b.done = done
	b.mu.Unlock()

	go func() {
		defer close(done)
		b.refresh(ctx)
		ticker := time.NewTicker(b.period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.refresh(ctx)
			}
		}
	}()
}

func (b *Badge) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	done := b.done
	b.cancel = nil
	b.done = nil
	b.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}

func (b *Badge) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// refresh keeps the previous count on failure; a badge miss is not worth an
// alert.
func (b *Badge) refresh(ctx context.Context) {
	n, err := b.fetch(ctx)
	if err != nil {
		utils.LogEvent("", "badge", "refresh", "fetch failed: "+err.Error())
		return
	}
	b.mu.Lock()
	b.count = n
	b.mu.Unlock()
}
