// Package refresh keeps the financial dashboard current while someone is watching it.
package refresh

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is used when Loop is handed a non-positive interval.
const DefaultInterval = 30 * time.Second

// Loop calls fn straight away and then once per interval until ctx is done. fn deals
// with its own errors; the loop only stops on cancellation.
func Loop(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	if ctx.Err() != nil {
		return
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	fn(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			fn(ctx)
		}
	}
}

// AlertTracker notices when the number of repeat entities grows between refreshes.
type AlertTracker struct {
	mu   sync.Mutex
	last int
}

// Observe records total and returns how many entities are new since the previous
// observation. The first non-zero observation only sets the baseline.
func (a *AlertTracker) Observe(total int) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	var added int
	if total > a.last && a.last > 0 {
		added = total - a.last
	}
	a.last = total
	return added
}
