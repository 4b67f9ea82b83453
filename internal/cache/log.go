package cache

import (
	"context"
	"sync"

	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/metrics"
)

// LogInvalidator only records the signal. Used when no Redis is configured.
type LogInvalidator struct{}

func (LogInvalidator) Invalidate(ctx context.Context, paths ...string) {
	for _, p := range paths {
		metrics.RecordInvalidation(p, true)
	}
	config.WithContext(ctx).WithField("paths", paths).Debug("Cache invalidated")
}

// Recorder keeps every signal in memory.
type Recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *Recorder) Invalidate(_ context.Context, paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string(nil), paths...))
}

func (r *Recorder) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Paths returns the distinct paths signalled so far.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, c := range r.calls {
		for _, p := range c {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
