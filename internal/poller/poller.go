package poller

import (
	"context"
	"log"
	"sync"
	"time"
)

// Poller re-runs a view's fetch cycle at a fixed interval. Ticks are strictly
// sequential: the timer is re-armed only after the previous tick returns, so a
// slow backend never piles up concurrent fetches. Start replaces any running
// loop instead of accumulating one per navigation.
type Poller struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(interval time.Duration) *Poller {
	return &Poller{interval: interval}
}

// Start begins invoking tick every interval until Stop or the parent context
// ends. Tick errors are logged and the loop keeps going; background poll
// failures never interrupt the user.
func (p *Poller) Start(ctx context.Context, tick func(context.Context) error) {
	p.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		timer := time.NewTimer(p.interval)
		defer timer.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-timer.C:
				if err := tick(runCtx); err != nil && runCtx.Err() == nil {
					log.Printf("background refresh failed: %v", err)
				}
				timer.Reset(p.interval)
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight tick to finish. A result
// arriving after Stop belongs to a dead view; the cancelled context lets the
// tick notice and drop it before rendering.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
