package rate

import (
	"sync"
	"time"

	"github.com/WatchBeam/clock"

	"github.com/lindar-open/dotdigital-cli/logger"
)

type windowConfig struct {
	// window is the refresh period; the admission count
	// resets at every window boundary
	// default: 1 minute
	window time.Duration

	// limit is the number of admissions allowed per window
	// default: 5
	limit int

	// maxWait bounds the total time a single Acquire call
	// is willing to block waiting for an admission
	// default: 1 hour
	maxWait time.Duration

	// clock supplies time; injectable for tests
	// default: clock.C
	clock clock.Clock

	// logger reports waits between windows
	// default: logger.Noop
	logger logger.Logger
}

func defaultWindowConfig() windowConfig {
	return windowConfig{
		window:  time.Minute,
		limit:   5,
		maxWait: time.Hour,
		clock:   clock.C,
		logger:  &logger.Noop{},
	}
}

type WindowConfigOption func(c *windowConfig)

func WithWindow(d time.Duration) WindowConfigOption {
	return func(c *windowConfig) {
		c.window = d
	}
}

func WithLimit(n int) WindowConfigOption {
	return func(c *windowConfig) {
		c.limit = n
	}
}

func WithMaxWait(d time.Duration) WindowConfigOption {
	return func(c *windowConfig) {
		c.maxWait = d
	}
}

func WithClock(clk clock.Clock) WindowConfigOption {
	return func(c *windowConfig) {
		c.clock = clk
	}
}

func WithWindowLogger(log logger.Logger) WindowConfigOption {
	return func(c *windowConfig) {
		c.logger = log
	}
}

// windowLimiter is a fixed-window Limiter: up to limit admissions per
// window, callers past the limit sleep until the next window opens.
// Acquire computes the wait it would need before sleeping and fails with
// ErrWaitTimeout as soon as the accumulated wait would exceed maxWait.
type windowLimiter struct {
	config windowConfig

	mu          sync.Mutex
	windowStart time.Time
	used        int
}

var _ Limiter = &windowLimiter{}

func NewWindowLimiter(opts ...WindowConfigOption) Limiter {
	var config = defaultWindowConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &windowLimiter{config: config}
}

func (l *windowLimiter) Acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.config.clock.Now()
	if l.windowStart.IsZero() {
		l.windowStart = now
	}

	var waited time.Duration
	for {
		// Roll the window forward to the one containing now.
		for !now.Before(l.windowStart.Add(l.config.window)) {
			l.windowStart = l.windowStart.Add(l.config.window)
			l.used = 0
		}

		if l.used < l.config.limit {
			l.used++
			return nil
		}

		wait := l.windowStart.Add(l.config.window).Sub(now)
		if waited+wait > l.config.maxWait {
			return ErrWaitTimeout
		}

		l.config.logger.Debugf(
			"rate limit of %d per %v reached; waiting %v for the next window",
			l.config.limit, l.config.window, wait,
		)

		<-l.config.clock.After(wait)
		waited += wait
		now = l.config.clock.Now()
	}
}
