// Package limiter implements a fixed-window request counter keyed by client
// address. Each key holds a count and a window-reset timestamp; once the
// reset time passes, the next request starts a fresh window. A janitor
// sweeps expired keys so the map stays bounded in a long-lived process.
package limiter

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Window is a process-local fixed-window limiter.
type Window struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*entry
	now     func() time.Time
}

type Option func(*Window)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Window) { w.now = now }
}

func New(max int, window time.Duration, opts ...Option) *Window {
	w := &Window{
		max:     max,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Allow counts a request for key and reports whether it is within the
// limit. The counter is incremented before the check, so the first request
// past the threshold is the one rejected.
func (w *Window) Allow(key string) bool {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &entry{resetAt: now.Add(w.window)}
		w.entries[key] = e
	}
	e.count++
	return e.count <= w.max
}

// Sweep drops keys whose window has expired.
func (w *Window) Sweep() {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	for k, e := range w.entries {
		if now.After(e.resetAt) {
			delete(w.entries, k)
		}
	}
}

// Len reports the number of tracked keys.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// StartJanitor sweeps expired keys periodically until ctx is cancelled.
func (w *Window) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				w.Sweep()
			}
		}
	}()
}
