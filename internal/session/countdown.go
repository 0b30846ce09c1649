package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"bakery-service/internal/models"
	"bakery-service/internal/store"
	"bakery-service/internal/util"
)

// Countdown is the order-confirmation redirect timer: once per interval it
// decrements the remaining seconds, and at zero dispatches a navigation back
// to home. The store knows nothing about it; it only sees the SetSection
// action. Stop cancels the pending redirect, which is what leaving the
// confirmation view does.
type Countdown struct {
	dispatcher *Dispatcher
	interval   time.Duration
	logger     *zap.Logger

	mu        sync.Mutex
	remaining int
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewCountdown creates a countdown starting at seconds. The interval is one
// second in production; tests shorten it.
func NewCountdown(dispatcher *Dispatcher, seconds int, interval time.Duration) *Countdown {
	return &Countdown{
		dispatcher: dispatcher,
		interval:   interval,
		remaining:  seconds,
		logger:     util.GetLogger(),
	}
}

// Start begins ticking. It returns immediately; the ticking happens on a
// background goroutine until zero is reached, Stop is called, or ctx ends.
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})
	c.mu.Unlock()

	go c.run(ctx)
}

func (c *Countdown) run(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			c.remaining--
			finished := c.remaining <= 0
			if finished {
				c.remaining = 0
			}
			c.mu.Unlock()

			if finished {
				c.dispatcher.Dispatch(store.SetSection{Section: models.SectionHome})
				util.ConfirmationRedirectsTotal.Inc()
				c.logger.Debug("Confirmation countdown finished, redirected home")
				return
			}
		}
	}
}

// Stop cancels the countdown and waits for the tick goroutine to exit.
// Stopping a countdown that never started, or stopping twice, is fine.
func (c *Countdown) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	done := c.done
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Remaining returns the seconds left before the redirect
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}
